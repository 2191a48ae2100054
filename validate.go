package textbytes

import "github.com/riverfjs/textbytes-go/internal/scan"

// ValidateUTF8 完整校验 src 是否为格式良好的 1-4 字节 UTF-8 序列
//
// 扫描操作信任续字节，不逐个检查；这里则逐字节校验：首字节必须可分类，
// 续字节必须落在 0x80-0xBF，最后一个字符不能被缓冲区末尾截断。
// 适合在接收外部数据后、开始按字符操作前做一次性检查。
//
// 返回:
//   - error: 首字节非法时 *LeadByteError；续字节非法或字符被截断时
//     *CharBytesError（携带偏移量和可疑字节串）
func ValidateUTF8(src *Text) error {
	return scan.Validate(src.B)
}
