package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseEpisodeRange parses an episode range flag value:
//
//	""      -> 1, open-ended
//	"7"     -> episode 7 only
//	"3-10"  -> episodes 3 through 10
//	"4-"    -> from 4, open-ended
//
// An end of zero means open-ended.
func parseEpisodeRange(s string) (start, end int, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 1, 0, nil
	}

	first, rest, found := strings.Cut(s, "-")
	start, err = strconv.Atoi(first)
	if err != nil || start < 1 {
		return 0, 0, fmt.Errorf("invalid episode range %q", s)
	}

	if !found {
		return start, start, nil
	}
	if rest == "" {
		return start, 0, nil
	}

	end, err = strconv.Atoi(rest)
	if err != nil || end < start {
		return 0, 0, fmt.Errorf("invalid episode range %q", s)
	}
	return start, end, nil
}
