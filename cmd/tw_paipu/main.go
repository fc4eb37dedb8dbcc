package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kevin-chtw/tw_paipu/config"
	"github.com/kevin-chtw/tw_paipu/fetch"
	"github.com/kevin-chtw/tw_paipu/majsoul"
	"github.com/kevin-chtw/tw_paipu/utils"
	"github.com/spf13/cobra"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

var (
	configFile string
	uuidFile   string
)

var rootCmd = &cobra.Command{
	Use:   "tw_paipu [uuid...]",
	Short: "雀魂牌谱转天凤格式",
	Long:  `把已下载的雀魂牌谱(JSON导出)逐场转换为tenhou.net/5日志`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := utils.InitLogger(cfg.Level, cfg.Path); err != nil {
			return err
		}

		uuids := args
		if uuidFile != "" {
			listed, err := readUUIDs(uuidFile)
			if err != nil {
				return err
			}
			uuids = append(uuids, listed...)
		}
		if len(uuids) == 0 {
			return fmt.Errorf("no uuids given")
		}

		opts, err := cfg.Options()
		if err != nil {
			return err
		}

		queue := fetch.NewQueue(
			&fetch.FileFetcher{Dir: cfg.InputDir},
			&majsoul.TranscriptDecoder{RoomNames: cfg.RoomNameTable()},
			opts,
			time.Duration(cfg.DelayMS)*time.Millisecond,
		)
		results, err := queue.Run(context.Background(), uuids)
		if err != nil {
			return err
		}

		failed := 0
		for _, r := range results {
			if r.Failed() {
				failed++
				continue
			}
			data, err := r.Doc.Encode(cfg.Pretty)
			if err != nil {
				return err
			}
			out := filepath.Join(cfg.OutputDir, "tenhou_"+r.UUID+".json")
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}
			logger.Log.Infof("wrote %s", out)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d paipu failed", failed, len(results))
		}
		return nil
	},
}

// inspectCmd 列出二进制牌谱里的记录名，排查客户端导出的原始数据用
var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "列出二进制牌谱的记录名",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		records, err := majsoul.ListRecords(raw)
		if err != nil {
			return err
		}
		for i, r := range records {
			fmt.Printf("%4d %s (%d bytes)\n", i, r.Name, len(r.Body))
		}
		return nil
	},
}

func readUUIDs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var uuids []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			uuids = append(uuids, line)
		}
	}
	return uuids, scanner.Err()
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "configFile", "", "resource file")
	rootCmd.Flags().StringVar(&uuidFile, "uuidFile", "", "file with one uuid per line")
	rootCmd.AddCommand(inspectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
