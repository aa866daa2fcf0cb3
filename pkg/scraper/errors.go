package scraper

import "fmt"

// ConnectivityError means the timetable site could not be reached at all:
// DNS failure, refused connection, timeout.
type ConnectivityError struct {
	URL string
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("could not reach %s: %v", e.URL, e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// RemoteServiceError means the site answered but not with a usable timetable
// page: a non-2xx status or a document without the expected grid shape.
type RemoteServiceError struct {
	URL        string
	StatusCode int
	Reason     string
}

func (e *RemoteServiceError) Error() string {
	switch {
	case e.Reason != "" && e.StatusCode != 0:
		return fmt.Sprintf("timetable service error %d: %s", e.StatusCode, e.Reason)
	case e.Reason != "":
		return fmt.Sprintf("timetable service error: %s", e.Reason)
	default:
		return fmt.Sprintf("timetable service returned status %d for %s", e.StatusCode, e.URL)
	}
}
