package cmd

import (
	"fmt"

	"oraculo/bootstrap"
	"oraculo/database/seeders"
	"oraculo/pkg/config"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "导入牌组到卡牌目录",
	Long: `从 .toml 或 .json 文件导入卡牌，已存在的卡牌（按短代码或名称匹配）会被更新。
未指定 --file 且未配置 CATALOG_SEED_FILE 时导入内置的 22 张大阿卡纳。

Examples:
  oraculo seed
  oraculo seed --file cards.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		if file == "" {
			file = config.GetString("catalog.seed_file")
		}

		cards, err := seeders.Load(file)
		if err != nil {
			return err
		}

		bootstrap.SetupDB()
		bootstrap.SetupRedis()
		services := bootstrap.SetupServices()

		summary, err := services.Catalog.Import(cmd.Context(), cards)
		if err != nil {
			return fmt.Errorf("导入失败: %w", err)
		}

		source := file
		if source == "" {
			source = "内置大阿卡纳"
		}
		fmt.Fprintln(cmd.OutOrStdout(), colorize.GreenString("✓ 导入完成")+" "+source)
		fmt.Fprintf(cmd.OutOrStdout(), "  新增 %d，更新 %d，共 %d 张\n", summary.Inserted, summary.Updated, summary.Total)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringP("file", "f", "", "种子文件路径（.toml 或 .json）")
}
