package main

import (
	"errors"
	"flag"
	"fmt"
	"github.com/davejbax/go-dostime"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"io"
	"strconv"
	"time"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

const (
	timeLayout     = "2006-01-02 15:04:05"
	fineTimeLayout = "2006-01-02 15:04:05.00"
	dateLayout     = "2006-01-02"
)

var (
	errUsage      = errors.New("invalid usage")
	errUnsetValue = errors.New("value does not hold a valid date and time")
)

const usage = `usage: dostime [-v] [-utc] COMMAND [ARGS]

commands:
  decode VALUE...                     decode 32-bit DOS date and time values (date word in the high half)
  stat FILE...                        show file modification times as DOS values
  touch -value VALUE FILE...          set file access and modification times from a DOS value
  entry [-offset N] IMAGE             show the timestamps of the FAT directory entry at byte offset N
  zip [-offset N] ARCHIVE             show the modification time of the ZIP local file header at byte offset N

flags:
`

type command struct {
	fs  afero.Fs
	out io.Writer
	log *logrus.Logger

	// loc is the location DOS wall-clock times are taken to be in
	loc *time.Location
}

// run executes the command line in args and returns the process exit code
func run(args []string, fs afero.Fs, out io.Writer, log *logrus.Logger) int {
	flags := flag.NewFlagSet("dostime", flag.ContinueOnError)
	flags.SetOutput(log.Out)
	verbose := flags.Bool("v", false, "enable debug logging")
	utc := flags.Bool("utc", false, "treat DOS times as UTC instead of local time")
	flags.Usage = func() {
		fmt.Fprint(flags.Output(), usage)
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	c := &command{fs: fs, out: out, log: log, loc: time.Local}
	if *utc {
		c.loc = time.UTC
	}

	if flags.NArg() == 0 {
		flags.Usage()
		return exitUsage
	}

	name, rest := flags.Arg(0), flags.Args()[1:]
	log.WithFields(logrus.Fields{"command": name, "args": rest}).Debug("running command")

	var err error
	switch name {
	case "decode":
		err = c.decode(rest)
	case "stat":
		err = c.stat(rest)
	case "touch":
		err = c.touch(rest)
	case "entry":
		err = c.entry(rest)
	case "zip":
		err = c.zip(rest)
	default:
		log.WithField("command", name).Error("unknown command")
		flags.Usage()
		return exitUsage
	}

	if errors.Is(err, errUsage) {
		log.WithError(err).Error("invalid arguments")
		return exitUsage
	} else if err != nil {
		log.WithError(err).WithField("command", name).Error("command failed")
		return exitError
	}

	return exitOK
}

func parseValue(s string) (dostime.DateTime, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return dostime.DateTime{}, fmt.Errorf("%w: invalid value %q: %w", errUsage, s, err)
	}

	return dostime.FromUint32(uint32(v)), nil
}

// describe formats the decoded form of d, or the reason it has none
func describe(d dostime.DateTime, t time.Time, ok bool, layout string) string {
	switch {
	case ok:
		return t.Format(layout)
	case d.IsZero():
		return "unset"
	default:
		return "invalid"
	}
}

func (c *command) decode(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: decode needs at least one value", errUsage)
	}

	for _, arg := range args {
		packed, err := parseValue(arg)
		if err != nil {
			return err
		}

		t, ok := packed.TimeIn(c.loc)
		if !ok {
			c.log.WithField("value", packed.String()).Debug("value does not decode to a date and time")
		}

		fmt.Fprintf(c.out, "%s\t%s\n", packed, describe(packed, t, ok, timeLayout))
	}

	return nil
}

func (c *command) stat(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: stat needs at least one file", errUsage)
	}

	for _, name := range args {
		info, err := c.fs.Stat(name)
		if err != nil {
			return fmt.Errorf("could not stat %s: %w", name, err)
		}

		modified := info.ModTime().In(c.loc)
		packed := dostime.FromTime(modified)

		decoded := "out of range"
		if dostime.InRange(modified) {
			t, ok := packed.TimeIn(c.loc)
			decoded = describe(packed, t, ok, timeLayout)
		} else {
			c.log.WithFields(logrus.Fields{
				"file":     name,
				"modified": modified,
			}).Warn("modification time cannot be represented as a DOS date and time")
		}

		fmt.Fprintf(c.out, "%s\t%s\t%s\n", name, packed, decoded)
	}

	return nil
}

func (c *command) touch(args []string) error {
	flags := flag.NewFlagSet("touch", flag.ContinueOnError)
	flags.SetOutput(c.log.Out)
	value := flags.String("value", "", "32-bit DOS date and time value to set")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	if *value == "" || flags.NArg() == 0 {
		return fmt.Errorf("%w: touch needs -value and at least one file", errUsage)
	}

	packed, err := parseValue(*value)
	if err != nil {
		return err
	}

	t, ok := packed.TimeIn(c.loc)
	if !ok {
		return fmt.Errorf("%w: %s", errUnsetValue, packed)
	}

	for _, name := range flags.Args() {
		if err := c.fs.Chtimes(name, t, t); err != nil {
			return fmt.Errorf("could not set times of %s: %w", name, err)
		}

		c.log.WithFields(logrus.Fields{"file": name, "time": t}).Debug("set file times")
	}

	return nil
}

// openAt opens the single file named in the arguments of a record reading command and seeks to its -offset flag
func (c *command) openAt(name string, args []string) (afero.File, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(c.log.Out)
	offset := flags.Int64("offset", 0, "byte offset of the record")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}

	if flags.NArg() != 1 || *offset < 0 {
		return nil, fmt.Errorf("%w: %s needs exactly one file and a non-negative offset", errUsage, name)
	}

	f, err := c.fs.Open(flags.Arg(0))
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", flags.Arg(0), err)
	}

	if _, err := f.Seek(*offset, io.SeekStart); err != nil {
		f.Close()
		return nil, fmt.Errorf("could not seek to offset %d: %w", *offset, err)
	}

	return f, nil
}

func (c *command) entry(args []string) error {
	f, err := c.openAt("entry", args)
	if err != nil {
		return err
	}
	defer f.Close()

	times, err := dostime.ReadEntryTimes(f)
	if err != nil {
		return fmt.Errorf("could not read directory entry from %s: %w", f.Name(), err)
	}

	created, ok := times.Created.TimeFineIn(times.CreatedCentiseconds, c.loc)
	fmt.Fprintf(c.out, "created\t%s\t%s\n", times.Created, describe(times.Created, created, ok, fineTimeLayout))

	modified, ok := times.Modified.TimeIn(c.loc)
	fmt.Fprintf(c.out, "modified\t%s\t%s\n", times.Modified, describe(times.Modified, modified, ok, timeLayout))

	accessed, ok := times.Accessed.TimeIn(c.loc)
	fmt.Fprintf(c.out, "accessed\t%s\t%s\n", times.Accessed, describe(times.Accessed, accessed, ok, dateLayout))

	return nil
}

func (c *command) zip(args []string) error {
	f, err := c.openAt("zip", args)
	if err != nil {
		return err
	}
	defer f.Close()

	packed, err := dostime.ReadZipModified(f)
	if err != nil {
		return fmt.Errorf("could not read local file header from %s: %w", f.Name(), err)
	}

	modified, ok := packed.TimeIn(c.loc)
	fmt.Fprintf(c.out, "modified\t%s\t%s\n", packed, describe(packed, modified, ok, timeLayout))

	return nil
}
