package textbytes

import (
	"sync"

	"github.com/riverfjs/textbytes-go/internal/scan"
)

// 导出类型别名
type Offsets = scan.Offsets

// EndOfText 偏移量序列的结尾哨兵值，区别于真实偏移量
const EndOfText = scan.EndOfText

// offsetsPool 复用 Offsets 存储，初始容量 512 个条目
var offsetsPool = sync.Pool{
	New: func() interface{} {
		return scan.NewOffsets(512)
	},
}

// AcquireOffsets 从池中取出一个已清空的 Offsets
//
// 偏移量存储由调用方显式持有：每个并发任务各取各的实例，并且不要在
// 触发新一轮扫描之后继续使用上一轮的结果
func AcquireOffsets() *Offsets {
	o := offsetsPool.Get().(*scan.Offsets)
	o.Reset()
	return o
}

// ReleaseOffsets 将 Offsets 归还池中，归还后不可再使用
func ReleaseOffsets(o *Offsets) {
	offsetsPool.Put(o)
}
