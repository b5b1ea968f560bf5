package cache

import "strconv"

// WeeksPageKey builds the key for one rendered weeks page. Week filtering is
// case-sensitive, so the status goes into the key exactly as it will be
// filtered; normalizing here would alias distinct responses.
func WeeksPageKey(status string, page, perPage int) string {
	return "timesheets:weeks:v1:status=" + status +
		":page=" + strconv.Itoa(page) +
		":perPage=" + strconv.Itoa(perPage)
}
