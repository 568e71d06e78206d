//go:build tinygo

package main

import (
	"time"

	"github.com/fgreil/mitzi-karl-eido/app"
	"github.com/fgreil/mitzi-karl-eido/hal"
)

func main() {
	h := hal.New()
	sess, err := app.NewSession(h)
	if err != nil {
		h.Logger().WriteLineString("eido: " + err.Error())
		for {
			time.Sleep(time.Second)
		}
	}

	for {
		if err := sess.Step(); err != nil {
			// Nothing to exit to on the device; idle after Back.
			for {
				time.Sleep(time.Second)
			}
		}
		time.Sleep(time.Second / 60)
	}
}
