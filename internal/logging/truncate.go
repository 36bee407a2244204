package logging

// MaxLogFieldLength bounds free-form strings (request bodies, scripts)
// before they go into a log field.
const MaxLogFieldLength = 256

// Truncate shortens s to MaxLogFieldLength, appending "..." when it cut
// anything off.
func Truncate(s string) string {
	return TruncateN(s, MaxLogFieldLength)
}

// TruncateN shortens s to at most n characters plus a "..." marker.
func TruncateN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// TruncateSlice keeps at most maxItems entries, replacing the tail with
// a "... and N more" marker so counts stay visible in logs.
func TruncateSlice(items []string, maxItems int) []string {
	if len(items) <= maxItems {
		return items
	}
	out := make([]string, 0, maxItems)
	out = append(out, items[:maxItems-1]...)
	out = append(out, "... and "+itoa(len(items)-maxItems+1)+" more")
	return out
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
