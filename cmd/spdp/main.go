// Package main 提供参与者公告的编解码命令行工具
//
//	spdp announce -name alice -locators udpv4:192.168.1.1:7410
//	spdp announce -name alice -count 0   # 按公告周期持续输出，Ctrl+C 结束
//	spdp decode <hex>
package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/cherho0/Fast-DDS/internal/app"
	"github.com/cherho0/Fast-DDS/internal/core/discovery/participant"
	"github.com/cherho0/Fast-DDS/pkg/lib/log"
	"github.com/cherho0/Fast-DDS/pkg/types"
)

var logger = log.Logger("cmd/spdp")

var (
	configFile = flag.String("config", "", "配置文件路径（JSON）")
	name       = flag.String("name", "", "参与者名称")
	locators   = flag.String("locators", "", "元流量单播地址，逗号分隔，例如 udpv4:192.168.1.1:7410")
	count      = flag.Int("count", 1, "announce 输出次数，按 announcement_period 间隔；0 表示持续输出")
	verbose    = flag.Bool("v", false, "输出调试日志")
	showHelp   = flag.Bool("help", false, "显示帮助信息")
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func run(stdin io.Reader, stdout io.Writer) error {
	flag.Parse()
	if *showHelp || flag.NArg() == 0 {
		printHelp()
		return nil
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log.SetOutputWithLevel(os.Stderr, level)

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return fmt.Errorf("配置错误: %w", err)
	}

	rt, err := app.NewBootstrap(cfg).Build()
	if err != nil {
		return err
	}
	defer func() {
		if err := rt.Stop(context.Background()); err != nil {
			logger.Warn("停止运行时失败", "error", err)
		}
	}()

	switch cmd := flag.Arg(0); cmd {
	case "announce":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return announce(ctx, rt, *count, stdout)
	case "decode":
		input := strings.Join(flag.Args()[1:], "")
		if input == "" {
			data, err := io.ReadAll(stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			input = string(data)
		}
		return decode(rt, input, stdout)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// announce 输出本地参与者公告的十六进制编码，每行一次
func announce(ctx context.Context, rt *app.Runtime, n int, out io.Writer) error {
	pd := rt.NewLocalParticipant(*name)
	for _, s := range splitAndTrim(*locators, ",") {
		l, err := types.ParseLocator(s)
		if err != nil {
			return err
		}
		if !pd.AddMetatrafficUnicastLocator(l) {
			logger.Warn("locator 超出容量被忽略", "locator", l)
		}
	}

	err := rt.AnnounceEvery(ctx, pd, n, func(data []byte) error {
		_, err := fmt.Fprintln(out, hex.EncodeToString(data))
		return err
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// decode 解码十六进制公告并输出 JSON 摘要
func decode(rt *app.Runtime, input string, out io.Writer) error {
	data, err := hex.DecodeString(strings.Join(strings.Fields(input), ""))
	if err != nil {
		return fmt.Errorf("invalid hex input: %w", err)
	}

	h, created, err := rt.HandleAnnouncement(data)
	if err != nil {
		return err
	}
	defer h.Release()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(summarize(h.Data().Info(), created))
}

// summary 解码结果的可读形式
type summary struct {
	GUID             string   `json:"guid"`
	Name             string   `json:"name,omitempty"`
	ProtocolVersion  string   `json:"protocol_version"`
	VendorID         string   `json:"vendor_id"`
	LeaseDuration    string   `json:"lease_duration"`
	BuiltinEndpoints string   `json:"builtin_endpoints"`
	Metatraffic      []string `json:"metatraffic_locators,omitempty"`
	Default          []string `json:"default_locators,omitempty"`
	PersistenceGUID  string   `json:"persistence_guid,omitempty"`
	New              bool     `json:"new"`
}

func summarize(info participant.Info, created bool) summary {
	s := summary{
		GUID:             info.GUID.String(),
		Name:             info.Name,
		ProtocolVersion:  fmt.Sprintf("%d.%d", info.ProtocolVersion.Major, info.ProtocolVersion.Minor),
		VendorID:         fmt.Sprintf("%02x.%02x", info.VendorID[0], info.VendorID[1]),
		LeaseDuration:    info.LeaseDuration.Std().String(),
		BuiltinEndpoints: fmt.Sprintf("0x%08x", uint32(info.BuiltinEndpoints)),
		New:              created,
	}
	for _, l := range append(info.MetatrafficLocators.Unicast(), info.MetatrafficLocators.Multicast()...) {
		s.Metatraffic = append(s.Metatraffic, l.String())
	}
	for _, l := range append(info.DefaultLocators.Unicast(), info.DefaultLocators.Multicast()...) {
		s.Default = append(s.Default, l.String())
	}
	for _, p := range info.Properties {
		if p.Name == participant.PersistenceGUIDProperty {
			s.PersistenceGUID = p.Value
		}
	}
	return s
}

// printHelp 打印帮助信息
func printHelp() {
	fmt.Println("spdp - 参与者发现公告编解码工具")
	fmt.Println()
	fmt.Println("用法:")
	fmt.Println("  spdp [选项] announce          # 输出本地参与者公告（十六进制）")
	fmt.Println("  spdp [选项] decode [hex]      # 解码公告，未给出参数时读取标准输入")
	fmt.Println()
	fmt.Println("选项:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("环境变量:")
	fmt.Println("  " + envPrefix + envLeaseDuration + "    覆盖租约时长，例如 30s")
	fmt.Println("  " + envPrefix + envMaxUnicast + "    覆盖单播地址上限")
}
