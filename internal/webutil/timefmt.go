// internal/webutil/timefmt.go
package webutil

import (
	"fmt"
	"math"
	"time"
)

// FormatTimeRemaining は次の復習可能時刻までの残り時間を
// ざっくりした英語表現に整形します（テンプレートのフィルタ用）。
// 既に復習可能（過去または現在）なら "now" を返します。
//
// 丸めの閾値はmoment.js系のrough humanizeに合わせています:
// 45秒未満=a few seconds, 90秒未満=a minute, 45分未満=N minutes,
// 90分未満=an hour, 22時間未満=N hours, 36時間未満=a day, ...
func FormatTimeRemaining(value, now time.Time) string {
	d := value.Sub(now)
	if d <= 0 {
		return "now"
	}

	s := d.Seconds()
	switch {
	case s < 45:
		return "in a few seconds"
	case s < 90:
		return "in a minute"
	case s < 45*60:
		return fmt.Sprintf("in %d minutes", round(s/60))
	case s < 90*60:
		return "in an hour"
	case s < 22*3600:
		return fmt.Sprintf("in %d hours", round(s/3600))
	case s < 36*3600:
		return "in a day"
	case s < 25*86400:
		return fmt.Sprintf("in %d days", round(s/86400))
	case s < 45*86400:
		return "in a month"
	case s < 345*86400:
		return fmt.Sprintf("in %d months", round(s/(30*86400)))
	case s < 548*86400:
		return "in a year"
	default:
		return fmt.Sprintf("in %d years", round(s/(365*86400)))
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
