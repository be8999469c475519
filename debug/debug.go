package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Match bool
	Merge bool
	NS    bool
	Write bool
	Eval  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Match = boolEnv("AMERGE_DEBUG_MATCH")
	d.Merge = boolEnv("AMERGE_DEBUG_MERGE")
	d.NS = boolEnv("AMERGE_DEBUG_NS")
	d.Write = boolEnv("AMERGE_DEBUG_WRITE")
	d.Eval = boolEnv("AMERGE_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Match() bool {
	return d.Match
}
func Merge() bool {
	return d.Merge
}
func NS() bool {
	return d.NS
}
func Write() bool {
	return d.Write
}
func Eval() bool {
	return d.Eval
}
