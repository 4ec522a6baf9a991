////////////////////////////////////////////////////////////////////////////////////////////////////

package cmd

////////////////////////////////////////////////////////////////////////////////////////////////////

import "time"

////////////////////////////////////////////////////////////////////////////////////////////////////

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05 MST"
)

// now is swapped in tests
var now = time.Now

func today() string {
	return now().Format(dateLayout)
}

func clockTime() string {
	return now().Format(timeLayout)
}

////////////////////////////////////////////////////////////////////////////////////////////////////
