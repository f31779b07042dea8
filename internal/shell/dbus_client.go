package shell

import (
	"github.com/godbus/dbus/v5"
)

const (
	plasmaBusName    = "org.kde.plasmashell"
	plasmaObjectPath = "/PlasmaShell"
	plasmaEvaluate   = "org.kde.PlasmaShell.evaluateScript"
)

// PlasmaClient defines the D-Bus operations used against plasmashell.
// This abstraction allows us to mock D-Bus interactions in tests.
//
//go:generate mockgen -destination=mocks/plasma_client_mock.go -package=mocks github.com/genricoloni/deskwall/internal/shell PlasmaClient
type PlasmaClient interface {
	// EvaluateScript runs a Plasma desktop script and returns what it printed
	EvaluateScript(script string) (string, error)

	// Close closes the D-Bus connection
	Close() error
}

// StdPlasmaClient is the real implementation using godbus
type StdPlasmaClient struct {
	conn *dbus.Conn
}

// NewStdPlasmaClient opens a private connection to the session bus.
// A private connection can be closed without affecting other users of the shared one.
func NewStdPlasmaClient() (*StdPlasmaClient, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, err
	}
	return &StdPlasmaClient{conn: conn}, nil
}

// EvaluateScript calls org.kde.PlasmaShell.evaluateScript
func (c *StdPlasmaClient) EvaluateScript(script string) (string, error) {
	var out string
	obj := c.conn.Object(plasmaBusName, dbus.ObjectPath(plasmaObjectPath))
	err := obj.Call(plasmaEvaluate, 0, script).Store(&out)
	return out, err
}

// Close closes the D-Bus connection
func (c *StdPlasmaClient) Close() error {
	return c.conn.Close()
}
