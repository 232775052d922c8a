package resolver

import "fmt"

// EpisodeString formats an episode number for query text. Numbers below
// ten are zero-padded to two digits to match common release naming.
func EpisodeString(episode int) string {
	if episode < 10 {
		return fmt.Sprintf("0%d", episode)
	}
	return fmt.Sprintf("%d", episode)
}

// Queries maps a (title, episode, quality) triple to the base query string
// and the two search keywords to try. Indexer title conventions are
// inconsistent about bracket style around the quality tag, so both
// "[1080p]" and "(1080p)" variants are searched.
func Queries(title string, episode, quality int) (query string, keywords [2]string) {
	query = fmt.Sprintf("%s - %s", title, EpisodeString(episode))
	keywords[0] = fmt.Sprintf("%s [%dp]", query, quality)
	keywords[1] = fmt.Sprintf("%s (%dp)", query, quality)
	return query, keywords
}
