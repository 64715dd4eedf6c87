package logger_test

import (
	"os"
	"time"

	"github.com/philipp01105/flaglog/core"
	"github.com/philipp01105/flaglog/facade"
	"github.com/philipp01105/flaglog/logger"
)

// Install a custom Logger as the process-wide implementation.
func ExampleInit() {
	log := logger.NewBuilder().
		WithLevel(logger.DebugLevel).
		WithOutput(os.Stderr).
		WithFlags(logger.LstdFlags | logger.Lshortfile | logger.Lmicroseconds).
		WithPrefix("myprogram: ").
		Build()

	if err := logger.Init(log); err != nil {
		panic(err)
	}
	facade.Debug("hello, world") // myprogram: DEBUG 2020/10/02 21:27:03.123123 main.go:12: hello, world
}

// Create a Logger with the Builder and pin the clock.
func ExampleNewBuilder() {
	log := logger.NewBuilder().
		WithOutput(os.Stdout).
		WithFlags(logger.LstdFlags | logger.LUTC).
		WithClock(func() time.Time { return time.Date(2020, 10, 2, 21, 27, 3, 0, time.UTC) }).
		Build()

	log.Debug("hello, world")
	log.Log(&core.Record{Level: core.WarnLevel, Message: "disk almost full"})
	// Output:
	// DEBUG 2020/10/02 21:27:03 hello, world
	// WARN  2020/10/02 21:27:03 disk almost full
}

// Move the prefix next to the message.
func ExampleNew() {
	log := logger.New(os.Stdout, "[db] ", logger.Lmsgprefix)

	log.Infof("connected to %s", "primary")
	// Output:
	// INFO  [db] connected to primary
}
