package rawhttp

import (
	"github.com/nthpart/go-rawhttp/internal/dialer"
)

type Dialer = dialer.Dialer
type CoreDialer = dialer.CoreDialer
