// Package tarot 抽牌引擎：洗牌选牌、正逆位、每日一牌
package tarot

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"math/rand/v2"
	"time"
)

// ErrInvalidDate 日期格式错误，需为 2006-01-02
var ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")

// Source 随机源，IntN 返回 [0, n) 内的均匀整数
//
// *rand.Rand（math/rand/v2）满足该接口，测试中可注入固定种子
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource 基于 math/rand/v2 顶层函数，可并发使用
var DefaultSource Source = globalSource{}

// NewSeededSource 返回固定种子的随机源，不可并发使用
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Draw 一张抽出的牌在候选集中的下标及朝向
type Draw struct {
	Index    int
	Reversed bool
}

// Pick 从 size 张牌中无偏地抽取 count 张不重复的牌
// 使用 Fisher-Yates 洗牌后取前缀，每张牌独立以 1/2 概率逆位。
// count 大于 size 时按 size 截断，count < 1 或 size < 1 时返回 nil
func Pick(src Source, size, count int) []Draw {
	if size < 1 || count < 1 {
		return nil
	}
	if count > size {
		count = size
	}

	perm := make([]int, size)
	for i := range perm {
		perm[i] = i
	}
	// 只需要确定前 count 个位置
	for i := 0; i < count; i++ {
		j := i + src.IntN(size-i)
		perm[i], perm[j] = perm[j], perm[i]
	}

	draws := make([]Draw, count)
	for i := 0; i < count; i++ {
		draws[i] = Draw{
			Index:    perm[i],
			Reversed: src.IntN(2) == 1,
		}
	}
	return draws
}

// DailyIndex 由日期和用户标识确定每日一牌的下标
// SHA-256(date + owner) 的前 4 字节按大端解析为 uint32，再对 size 取模
func DailyIndex(date, owner string, size int) int {
	if size < 1 {
		return -1
	}
	sum := sha256.Sum256([]byte(date + owner))
	seed := binary.BigEndian.Uint32(sum[:4])
	return int(seed % uint32(size))
}

// ValidateDate 校验日期戳格式
func ValidateDate(date string) error {
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return ErrInvalidDate
	}
	return nil
}
