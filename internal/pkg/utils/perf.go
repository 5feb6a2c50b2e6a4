package utils

import (
	"net/http"
	"strconv"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/pkg/errors"

	_ "net/http/pprof"
)

// RunPerfEndpoint serves pprof handlers on the debug port and blocks.
// Port < 1 disables the endpoint.
func RunPerfEndpoint(port int) error {
	if port < 1 {
		goapp.Log.Info().Msg("no debug.port, pprof endpoint disabled")
		return nil
	}
	goapp.Log.Info().Int("port", port).Msg("starting pprof endpoint")
	if err := http.ListenAndServe(":"+strconv.Itoa(port), nil); err != nil {
		return errors.Wrapf(err, "can't serve pprof at %d", port)
	}
	return nil
}
