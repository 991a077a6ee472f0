package cmd

import (
	"fmt"

	"oraculo/bootstrap"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "查看每日一牌",
	Long: `根据日期和用户标识计算当天的牌，同样的输入总是得到同一张牌。

Examples:
  oraculo daily
  oraculo daily --date 2024-01-01 --user alice`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")
		user, _ := cmd.Flags().GetString("user")

		var owner *string
		if user != "" {
			owner = &user
		}

		bootstrap.SetupDB()
		bootstrap.SetupRedis()
		services := bootstrap.SetupServices()

		daily, err := services.Readings.DailyCard(cmd.Context(), date, owner)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, colorize.CyanString("Date: ")+colorize.HiWhiteString(daily.Date))
		fmt.Fprintln(w, colorize.CyanString("Card: ")+colorize.HiWhiteString("%s", daily.Card.Name))
		if daily.Card.IsMajor() && daily.Card.Number != nil {
			fmt.Fprintln(w, colorize.CyanString("Type: ")+colorize.HiWhiteString("Major Arcana · %d", *daily.Card.Number))
		} else if daily.Card.Suit != nil {
			fmt.Fprintln(w, colorize.CyanString("Type: ")+colorize.HiWhiteString("Minor Arcana · %s", *daily.Card.Suit))
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, daily.Meaning)
		return nil
	},
}

func init() {
	dailyCmd.Flags().StringP("date", "d", "", "日期，格式 2006-01-02，默认今天")
	dailyCmd.Flags().StringP("user", "u", "", "用户标识")
}
