package util

import "fmt"

// FormatHMS 把剩余秒数格式化为补零的 HH:MM:SS。
// 配置时长不超过一小时也要正确处理小时位。
func FormatHMS(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hrs := seconds / 3600
	mins := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hrs, mins, secs)
}

// FormatTimeSpent 观看时长标签，如 "1h 20m" / "45m"
func FormatTimeSpent(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
