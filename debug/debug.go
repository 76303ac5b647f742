package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Layout bool
	Sort   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Layout = boolEnv("A2LTEXT_DEBUG_LAYOUT")
	d.Sort = boolEnv("A2LTEXT_DEBUG_SORT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Layout() bool {
	return d.Layout
}
func Sort() bool {
	return d.Sort
}
