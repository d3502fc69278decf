package server

import "fmt"

const HTTP_SUCCESS = 200
const HTTP_NOT_FOUND = 404
const HTTP_TIMEOUT = 408
const HTTP_SERVER_ERR = 503

func (ss SpectatorSessionState) Name() string {
	switch ss {
	case SS_NEW:
		return "NEW"
	case SS_WATCH:
		return "WATCH"
	case SS_OVER:
		return "OVER"
	case SS_ERR:
		return "ERR"
	default:
		return fmt.Sprintf("n/a:%d", ss)
	}
}
