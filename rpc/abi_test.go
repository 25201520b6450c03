package rpc

import (
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

const erc20Events = `[
	{"type": "event", "name": "Transfer", "inputs": [
		{"indexed": true, "name": "from", "type": "address"},
		{"indexed": true, "name": "to", "type": "address"},
		{"indexed": false, "name": "value", "type": "uint256"}
	]}
]`

// serve routes the package client to an in-memory server.
func serve(t *testing.T, handler fasthttp.RequestHandler) {
	ln := fasthttputil.NewInmemoryListener()
	go fasthttp.Serve(ln, handler) //nolint:errcheck

	origin := client
	client = &fasthttp.Client{
		Dial: func(addr string) (net.Conn, error) {
			return ln.Dial()
		},
	}
	retryDelay = time.Millisecond

	t.Cleanup(func() {
		client = origin
		ln.Close()
	})
}

func TestGetABI(t *testing.T) {
	serve(t, func(ctx *fasthttp.RequestCtx) {
		switch string(ctx.Path()) {
		case "/token.json":
			ctx.SetContentType("application/json")
			ctx.SetBodyString(erc20Events)
		case "/artifact.json":
			ctx.SetBodyString(`{"abi": ` + erc20Events + `}`)
		default:
			ctx.SetStatusCode(fasthttp.StatusNotFound)
		}
	})

	for _, path := range []string{"/token.json", "/artifact.json"} {
		abi, err := GetABI("http://abi.test" + path)
		require.NoError(t, err, path)
		require.Len(t, abi.Events, 1)
		assert.Equal(t, "Transfer(address,address,uint256)", abi.Events[0].Signature())
	}

	_, err := GetABI("http://abi.test/missing.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestGetABIInvalidDocument(t *testing.T) {
	serve(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetBodyString(`[{"type": "event", "name": "E", "inputs": [{"name": "x"}]}]`)
	})

	_, err := GetABI("http://abi.test/broken.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid abi document")
}

func TestDownloadRetry(t *testing.T) {
	var calls int32

	ln := fasthttputil.NewInmemoryListener()
	go fasthttp.Serve(ln, func(ctx *fasthttp.RequestCtx) { //nolint:errcheck
		ctx.SetBodyString("[]")
	})
	defer ln.Close()

	origin := client
	defer func() { client = origin }()
	retryDelay = time.Millisecond

	client = &fasthttp.Client{
		Dial: func(addr string) (net.Conn, error) {
			if atomic.AddInt32(&calls, 1) == 1 {
				return nil, fasthttp.ErrDialTimeout
			}
			return ln.Dial()
		},
	}

	body, err := download("http://abi.test/retry.json")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
	assert.GreaterOrEqual(t, atomic.LoadInt32(&calls), int32(2))
}
