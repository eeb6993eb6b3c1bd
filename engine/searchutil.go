package engine

import (
	"fmt"
	"io"
)

// FormatScore renders a search score the way UCI info lines expect it:
// "mate N" for forced mates (negative when the side to move is mated) and
// "cp N" otherwise.
func FormatScore(score int32) string {
	if score >= MaxScore-mateWindow {
		plies := MaxScore - score
		return fmt.Sprintf("mate %d", (plies+1)/2)
	} else if score <= MinScore+mateWindow {
		plies := score - MinScore
		return fmt.Sprintf("mate %d", -(plies+1)/2)
	}
	return fmt.Sprintf("cp %d", score)
}

func writeInfo(w io.Writer, depth int, res Result) {
	timeSpent := res.Elapsed.Milliseconds()
	if timeSpent == 0 {
		timeSpent = 1
	}
	nps := res.Nodes * 1000 / uint64(timeSpent)

	fmt.Fprintln(w,
		"info depth", depth,
		"score", FormatScore(res.Score),
		"nodes", res.Nodes,
		"time", timeSpent,
		"nps", nps,
		"pv", res.Move,
	)
}
