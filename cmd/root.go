// Package cmd 命令行入口
package cmd

import (
	"oraculo/bootstrap"
	"oraculo/pkg/config"

	"github.com/spf13/cobra"
)

// Env 通过 --env 指定加载的 .env 文件，例如 --env=testing 将加载 .env.testing
var Env string

// RootCmd 根命令，未指定子命令时启动 HTTP 服务
var RootCmd = &cobra.Command{
	Use:   "oraculo",
	Short: "Tarot reading service",
	Long: `Oraculo 是塔罗牌解读服务：维护卡牌目录、随机抽牌、每日一牌以及解读记录回放。

默认启动 HTTP 服务，其他命令用于导入牌组和本地查询。`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// 先初始化配置，再初始化日志
		config.InitConfig(Env)
		bootstrap.SetupLogger()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&Env, "env", "e", "", "加载 .env 文件，例如 --env=testing 将加载 .env.testing 文件")

	RootCmd.AddCommand(
		serveCmd,
		seedCmd,
		catalogCmd,
		dailyCmd,
	)
}
