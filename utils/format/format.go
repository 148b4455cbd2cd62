package format

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

var sizeUnits = []string{"Bytes", "KiB", "MiB", "GiB", "TiB"}

// Size renders a byte count with binary units and at most two decimals,
// e.g. 1536 -> "1.5 KiB". Anything past TiB stays in TiB.
func Size(bytes int64) string {
	if bytes == 0 {
		return "0 B"
	}

	sign := ""
	value := float64(bytes)
	if value < 0 {
		sign = "-"
		value = -value
	}

	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}

	rounded := math.Round(value*100) / 100
	return sign + strconv.FormatFloat(rounded, 'f', -1, 64) + " " + sizeUnits[unit]
}

// Duration renders d as "Hh:Mm:Ss", "Mm:Ss" or "Mm", truncating each part.
// Hours are dropped when zero; seconds are dropped when zero unless hours are shown.
func Duration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return formatSeconds(int64(d / time.Second))
}

// DurationMillis is Duration for millisecond counts. It works in whole
// seconds, so counts past the time.Duration range still render.
func DurationMillis(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	return formatSeconds(ms / 1000)
}

func formatSeconds(seconds int64) string {
	minutes := seconds / 60
	hours := minutes / 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh:%dm:%ds", hours, minutes%60, seconds%60)
	case seconds%60 > 0:
		return fmt.Sprintf("%dm:%ds", minutes%60, seconds%60)
	default:
		return fmt.Sprintf("%dm", minutes%60)
	}
}
