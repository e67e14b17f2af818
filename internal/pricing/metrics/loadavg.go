package metrics

import (
	"os"
	"strconv"
	"strings"
)

// loadAverage reads the 1-minute load average from /proc/loadavg. On
// platforms without it (anything non-Linux), it returns 0 rather than
// failing the metrics query.
func loadAverage() float64 {
	data, err := os.ReadFile("/proc/loadavg")
	if err != nil {
		return 0
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0
	}
	return v
}
