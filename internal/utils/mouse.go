package utils

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// X11Pointer queries the global pointer position from the X server. An
// undecorated backdrop window never receives pointer motion from the
// compositor, so parallax in that mode needs the root-window coordinates
// instead of raylib's window-relative ones.
type X11Pointer struct {
	conn *xgb.Conn
	root xproto.Window
}

func OpenX11Pointer() (*X11Pointer, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, err
	}

	setup := xproto.Setup(conn)
	return &X11Pointer{
		conn: conn,
		root: setup.DefaultScreen(conn).Root,
	}, nil
}

// Position returns the pointer position in root-window pixels.
func (p *X11Pointer) Position() (int, int, error) {
	reply, err := xproto.QueryPointer(p.conn, p.root).Reply()
	if err != nil {
		return 0, 0, err
	}
	return int(reply.RootX), int(reply.RootY), nil
}

func (p *X11Pointer) Close() {
	if p.conn != nil {
		p.conn.Close()
		p.conn = nil
	}
}
