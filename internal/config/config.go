package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/shibukawa/configdir"
	"go.uber.org/zap"
)

const (
	VendorName      = "six78"
	ApplicationName = "crew"

	SymmetricKeyLength = 32
	MaxTarget          = 99

	logsDirectory = "logs"
)

const (
	UserColor            = lipgloss.Color("#7D56F4")
	ForegroundShadeColor = lipgloss.Color("#555555")
	PassColor            = lipgloss.Color("#04B575")
	FailColor            = lipgloss.Color("#FF5F87")
)

var (
	playerName string
	debug      bool
	anonymous  bool
	target     int

	undo   bool
	hints  bool
	emotes bool

	fleet            string
	nameserver       string
	wakuStaticNodes  StaticWakuNodes
	wakuLightMode    bool
	wakuDiscV5       bool
	wakuDnsDiscovery bool

	onlinePeriod  time.Duration
	statePeriod   time.Duration
	onlineTimeout time.Duration

	redisAddress  string
	mysqlDSN      string
	listenAddress string

	command     string
	commandArgs []string
)

var Logger = zap.NewNop()
var LogFilePath string

type StaticWakuNodes []string

func (n *StaticWakuNodes) String() string {
	return strings.Join(*n, ",")
}

func (n *StaticWakuNodes) Set(value string) error {
	*n = append(*n, value)
	return nil
}

// SetupLogger writes the log of this run into its own file in the config folder.
func SetupLogger() {
	c := zap.NewProductionConfig()
	if debug {
		c = zap.NewDevelopmentConfig()
		c.Development = false
	}

	LogFilePath = createLogFile(command, time.Now())
	c.OutputPaths = []string{LogFilePath}
	logger, err := c.Build()
	if err != nil {
		panic(err)
	}
	Logger = logger
}

func logFileName(command string, now time.Time) string {
	if command == "" {
		command = "play"
	}
	stamp := strings.ReplaceAll(now.UTC().Format(time.RFC3339), ":", "-")
	return fmt.Sprintf("%s-%s-%s.log", ApplicationName, command, stamp)
}

func createLogFile(command string, now time.Time) string {
	folders := configdir.New(VendorName, ApplicationName).QueryFolders(configdir.Global)
	path := filepath.Join(folders[0].Path, logsDirectory, logFileName(command, now))

	if err := os.MkdirAll(filepath.Dir(path), 0770); err != nil {
		panic(err)
	}
	file, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	_ = file.Close()

	return path
}

func registerFlags(fs *flag.FlagSet) {
	fs.StringVar(&playerName, "name", "", "Player name")
	fs.BoolVar(&debug, "debug", false, "Show debug info")
	fs.BoolVar(&anonymous, "anonymous", false, "Do not store the player identity and rooms")
	fs.IntVar(&target, "target", 0, "Mission difficulty target of new deals, 0 keeps the default")
	fs.BoolVar(&undo, "rules.undo", true, "Allow taking back the last trick once per deal")
	fs.BoolVar(&hints, "rules.hints", true, "Allow signalling cards")
	fs.BoolVar(&emotes, "rules.emotes", true, "Allow emotes")

	fs.StringVar(&fleet, "waku.fleet", "shards.test", "Waku fleet name")
	fs.StringVar(&nameserver, "waku.nameserver", "", "Waku nameserver")
	fs.Var(&wakuStaticNodes, "waku.staticnode", "Waku static node multiaddress")
	fs.BoolVar(&wakuLightMode, "waku.lightmode", false, "Waku lightpush/filter mode")
	fs.BoolVar(&wakuDiscV5, "waku.discv5", true, "Enable DiscV5 discovery")
	fs.BoolVar(&wakuDnsDiscovery, "waku.dnsdiscovery", true, "Enable DNS discovery")

	fs.DurationVar(&onlinePeriod, "session.online", 5*time.Second, "Period of the player online message")
	fs.DurationVar(&statePeriod, "session.state", 30*time.Second, "Period of the host state message")
	fs.DurationVar(&onlineTimeout, "session.timeout", 20*time.Second, "Silence after which the host marks a player offline")

	fs.StringVar(&redisAddress, "storage.redis", "", "Keep room state in Redis at this address instead of local files")
	fs.StringVar(&mysqlDSN, "matchlog.mysql", "", "MySQL DSN of the match log")
	fs.StringVar(&listenAddress, "api.listen", ":8000", "Match log service listen address")
}

func ParseArguments() {
	if err := parse(flag.CommandLine, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func parse(fs *flag.FlagSet, arguments []string) error {
	registerFlags(fs)
	if err := fs.Parse(arguments); err != nil {
		return err
	}

	command, commandArgs = "", nil
	if args := fs.Args(); len(args) > 0 {
		command = args[0]
		commandArgs = args[1:]
	}
	return validate()
}

func validate() error {
	if target < 0 || target > MaxTarget {
		return errors.Errorf("target must be within 0..%d", MaxTarget)
	}
	if onlinePeriod <= 0 || statePeriod <= 0 {
		return errors.New("session periods must be positive")
	}
	if onlineTimeout <= onlinePeriod {
		return errors.New("session timeout must be longer than the online period")
	}
	return nil
}

func PlayerName() string {
	return playerName
}

func Debug() bool {
	return debug
}

func Anonymous() bool {
	return anonymous
}

// Target is the mission difficulty target, 0 keeps the default.
func Target() int {
	return target
}

func Undo() bool {
	return undo
}

func Hints() bool {
	return hints
}

func Emotes() bool {
	return emotes
}

func Fleet() string {
	return fleet
}

func Nameserver() string {
	return nameserver
}

func WakuStaticNodes() []string {
	return wakuStaticNodes
}

func WakuLightMode() bool {
	return wakuLightMode
}

func WakuDiscV5() bool {
	return wakuDiscV5
}

func WakuDnsDiscovery() bool {
	return wakuDnsDiscovery
}

func OnlineMessagePeriod() time.Duration {
	return onlinePeriod
}

func StateMessagePeriod() time.Duration {
	return statePeriod
}

func PlayerOnlineTimeout() time.Duration {
	return onlineTimeout
}

func RedisAddress() string {
	return redisAddress
}

func MySQLDSN() string {
	return mysqlDSN
}

func ListenAddress() string {
	return listenAddress
}

// Command is the first positional argument, the rest are its arguments.
func Command() string {
	return command
}

func CommandArgs() []string {
	return commandArgs
}
