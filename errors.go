package textbytes

import "github.com/riverfjs/textbytes-go/internal/scan"

// 错误类型统一定义在 internal/scan，这里通过别名导出。
// 三类错误对应三种责任：调用方越界（编程错误）、输入数据损坏
// （可上报的校验失败）、内部偏移量不一致（库或调用方的缺陷）。
// 都是同步返回，可用 errors.As 匹配；操作失败后目标缓冲区状态不保证。
type (
	// IndexError 字符索引越界
	IndexError = scan.IndexError
	// LeadByteError 非法的 UTF-8 首字节
	LeadByteError = scan.LeadByteError
	// OffsetDataError 偏移量序列自相矛盾（正常输入不应出现）
	OffsetDataError = scan.OffsetDataError
	// CharBytesError 续字节非法或字符被截断（由 ValidateUTF8 返回）
	CharBytesError = scan.CharBytesError
)
