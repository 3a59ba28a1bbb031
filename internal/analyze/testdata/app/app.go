package app

import (
	"net/netip"
	"time"
)

//env:var LISTEN_ADDR
var listenAddr string

var (
	//env:var DEBUG
	debug bool

	//env:var TIMEOUT
	timeout time.Duration

	//env:var PEERS
	peers []netip.Addr

	// plain is not bound.
	plain int
)

//env:var LISTEN_ADDR
var altAddr string

//env:var LABELS
var labels map[string]string

//env:var PAIR
var left, right int

//env:var FIRST
//env:var SECOND
var twice string

//env:var
var nameless string

//env:var RETRIES
const maxRetries = 3

//env:var LOAD
func load() {}

type Mode string

//env:var MODE
var mode Mode

type Settings struct {
	Host  string   `env:"HOST"`
	Alt   string   `env:"HOST"`
	Ch    chan int `env:"CH"`
	plain int

	HostName string `env:"HOST_NAME"`
	Hostname string `env:"HOSTNAME"`
}

type untagged struct {
	A int
}
