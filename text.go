package textbytes

import "github.com/valyala/bytebufferpool"

// Text 是库操作的字节缓冲文本类型
//
// 直接复用 bytebufferpool.ByteBuffer：B 字段暴露原始字节（长度即
// len(t.B)），Set 替换内容，Reset 原地清空。库不持有缓冲区，源和目标
// 都由调用方传入；原地操作（如裁剪）允许源和目标是同一个缓冲区。
type Text = bytebufferpool.ByteBuffer

// AcquireText 从池中取出一个空的 Text
//
// 用完后调用 ReleaseText 归还，避免每次调用都重新分配
func AcquireText() *Text {
	return bytebufferpool.Get()
}

// ReleaseText 将 Text 归还池中，归还后不可再使用
func ReleaseText(t *Text) {
	bytebufferpool.Put(t)
}
