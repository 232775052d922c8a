package download

import "errors"

// ErrNoWork is returned when the download phase is invoked with zero
// resolved selections. Terminal for the run, not retryable.
var ErrNoWork = errors.New("no torrents to download")
