package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"oraculo/app/models/card"
	"oraculo/pkg/config"
	"oraculo/pkg/tarotapi"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "卡牌目录相关操作",
}

var catalogFetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "从 tarotapi.dev 下载完整牌组并保存为 JSON 种子文件",
	Long: `下载 78 张牌的完整数据，转换为本地格式后写入 --out 指定的文件，
之后可以通过 oraculo seed --file <文件> 导入。`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		client := tarotapi.NewClient(
			config.GetString("catalog.api_url"),
			time.Duration(config.GetInt("catalog.api_timeout", 30))*time.Second,
		)
		fmt.Fprintln(cmd.OutOrStdout(), colorize.CyanString("🔮 正在获取 Tarot API 数据..."))

		cards, err := client.FetchDeck(cmd.Context())
		if err != nil {
			return err
		}

		raw, err := json.MarshalIndent(cards, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, raw, 0o644); err != nil {
			return fmt.Errorf("写入 %s 失败: %w", out, err)
		}

		majors := 0
		for i := range cards {
			if cards[i].ArcanaType == card.ArcanaMajor {
				majors++
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), colorize.GreenString("✓ 已保存到 %s", out))
		fmt.Fprintf(cmd.OutOrStdout(), "  共 %d 张：大阿卡纳 %d，小阿卡纳 %d\n", len(cards), majors, len(cards)-majors)
		return nil
	},
}

func init() {
	catalogFetchCmd.Flags().StringP("out", "o", "cards.json", "输出文件路径")
	catalogCmd.AddCommand(catalogFetchCmd)
}
