package cmd

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"labforge/internal/logging"
)

var (
	provisionServerAddr string
	provisionSessionID  string
	provisionOSType     string
	provisionUserID     string
)

// provisionCmd represents the provision command
var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Request a lab VM from a running server",
	Long: `Submit a provisioning request to a running labforge server and print
the returned setup transcript. Transport failures are retried; a server
error response is not.`,
	Run: func(cmd *cobra.Command, args []string) {
		if provisionSessionID == "" || provisionUserID == "" {
			logging.Logger().Fatal("Both --session and --user are required")
		}

		requestProvision(provisionServerAddr, provisionSessionID, provisionOSType, provisionUserID)
	},
}

func init() {
	rootCmd.AddCommand(provisionCmd)

	provisionCmd.Flags().StringVarP(&provisionServerAddr, "server", "s", "http://localhost:8080", "Server address")
	provisionCmd.Flags().StringVar(&provisionSessionID, "session", "", "Session ID (required)")
	provisionCmd.Flags().StringVar(&provisionOSType, "os", "Ubuntu", "OS type (Ubuntu, Rocky Linux, OpenSUSE)")
	provisionCmd.Flags().StringVar(&provisionUserID, "user", "", "User ID (required)")
}

func requestProvision(serverAddr, sessionID, osType, userID string) {
	body := fmt.Sprintf(`{"sessionId": %q, "osType": %q, "userId": %q}`, sessionID, osType, userID)

	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.Logger = nil

	resp, err := client.Post(serverAddr+"/provision", "application/json", strings.NewReader(body))
	if err != nil {
		logging.Logger().Fatal("Request failed", zap.Error(err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		logging.Logger().Fatal("Failed to read response", zap.Error(err))
	}

	if resp.StatusCode != http.StatusOK {
		logging.Logger().Fatal("Provisioning failed",
			zap.Int("status", resp.StatusCode),
			zap.String("body", logging.Truncate(string(respBody))))
	}

	fmt.Print(string(respBody))
}
