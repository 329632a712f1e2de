package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ekit/syncx"
)

type Generator interface {
	Generate(biz uint) (ID, error)
}

// MultiBizSnowFlake 按业务位隔离的雪花ID生成器
// 同一个节点上给不同业务(渠道)各分配一个独立的 node,
// 生成的ID可以反查出业务位, 用作对外请求的幂等键和流水号
type MultiBizSnowFlake struct {
	// 键为业务位
	nodes syncx.Map[uint, *snowflake.Node]
}

const (
	maxNode uint = 31
	maxBiz  uint = 31
)

var (
	ErrExceedNode = errors.New("node超出限制")
	ErrExceedBiz  = errors.New("业务位超出限制")
	ErrUnknownBiz = errors.New("未知的业务位")
)

// +---------------------------------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp |  5 Bit BizID | 5 Bit NodeID  |   12 Bit Sequence ID |
// +---------------------------------------------------------------------------------------+

// NewMultiBizSnowFlake nodeId 表示第几个节点, bizs 表示业务位数量, 从0开始最多到31
func NewMultiBizSnowFlake(nodeId uint, bizs uint) (*MultiBizSnowFlake, error) {
	if nodeId > maxNode {
		return nil, fmt.Errorf("%w", ErrExceedNode)
	}
	if bizs > maxBiz+1 {
		return nil, fmt.Errorf("%w", ErrExceedBiz)
	}
	res := &MultiBizSnowFlake{}
	for i := 0; i < int(bizs); i++ {
		nid := (i << 5) | int(nodeId)
		n, err := snowflake.NewNode(int64(nid))
		if err != nil {
			return nil, err
		}
		res.nodes.Store(uint(i), n)
	}
	return res, nil
}

type ID int64

func (c *MultiBizSnowFlake) Generate(biz uint) (ID, error) {
	n, ok := c.nodes.Load(biz)
	if !ok {
		return 0, fmt.Errorf("%w", ErrUnknownBiz)
	}
	return ID(n.Generate()), nil
}

func (f ID) BizID() uint {
	node := snowflake.ID(f).Node()
	return uint(node >> 5)
}

func (f ID) Int64() int64 {
	return int64(f)
}

func (f ID) String() string {
	return snowflake.ID(f).String()
}
