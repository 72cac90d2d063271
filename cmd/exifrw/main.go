// Command exifrw prints, verifies and rewrites the EXIF metadata of JPEG
// and TIFF files.
//
//	exifrw dump [-f text|yaml] FILE...
//	exifrw roundtrip FILE...
//	exifrw rewrite [--strip-gps] -o OUT FILE
//	exifrw check FILE...
package main

import (
	"io"
	"os"

	log "github.com/dsoprea/go-logging"
	"github.com/jessevdk/go-flags"

	exif "github.com/soypat/exifrw"
)

var mainLogger = log.NewLogger("exifrw.main")

type rootParameters struct {
	Verbose bool `short:"v" long:"verbose" description:"Print debug logging"`
}

var (
	rootArguments = new(rootParameters)
	stdout        io.Writer = os.Stdout
)

func main() {
	defer func() {
		if state := recover(); state != nil {
			err := log.Wrap(state)
			log.PrintError(err)
			os.Exit(-2)
		}
	}()

	parser := newParser()
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}

func newParser() *flags.Parser {
	parser := flags.NewParser(rootArguments, flags.Default)
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		configureLogging(rootArguments.Verbose)
		if command == nil {
			return nil
		}
		return command.Execute(args)
	}
	commands := []struct {
		name, short, long string
		data              interface{}
	}{
		{"dump", "Print entries", "Decode each file and print its entries.", new(dumpParameters)},
		{"roundtrip", "Verify re-encoding", "Decode, serialize and decode each file again, reporting any difference.", new(roundtripParameters)},
		{"rewrite", "Re-encode a JPEG file", "Decode a JPEG file and write a copy carrying the re-serialized metadata.", new(rewriteParameters)},
		{"check", "Compare with other decoders", "Decode each file with goexif and go-exif as well and report disagreements.", new(checkParameters)},
	}
	for _, c := range commands {
		_, err := parser.AddCommand(c.name, c.short, c.long, c.data)
		log.PanicIf(err)
	}
	return parser
}

var loggingConfigured bool

// configureLogging sends log output to the console. Without -v the level
// comes from the environment, as read by go-logging.
func configureLogging(verbose bool) {
	if loggingConfigured {
		return
	}
	loggingConfigured = true
	log.AddAdapter("console", log.NewConsoleLogAdapter())
	if !verbose {
		ecp := log.NewEnvironmentConfigurationProvider()
		log.LoadConfiguration(ecp)
		return
	}
	scp := log.NewStaticConfigurationProvider()
	scp.SetDefaultAdapterName("console")
	scp.SetLevelName(log.LevelNameDebug)
	log.LoadConfiguration(scp)
}

func readFile(name string) ([]byte, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, &exif.IOError{Name: name, Err: err}
	}
	return b, nil
}
