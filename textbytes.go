// Package textbytes 在可复用字节缓冲区上做零拷贝的 UTF-8 字符串操作
//
// 针对只需要取子串、去空白或查单个字符的场景，直接在原始字节上计算
// 字符边界，避免把字节流解码成 string / []rune 的开销。4 字节的 UTF-8
// 字符按一个逻辑字符计数（而不是像 UTF-16 那样拆成两个 code unit）。
//
// 核心功能：
//   - 扫描字符边界偏移量（可设字符数上限，结果可复用）
//   - UTF-8 / ASCII 子串提取
//   - 首尾空白裁剪（可原地执行）
//   - 按字符索引取 Unicode code point
//   - 完整字节流校验（含续字节检查）
//
// 主要 API：
//   - UTF8Substring() / ASCIISubstring(): 子串提取
//   - UTF8Trim() / ASCIITrim(): 空白裁剪
//   - UTF8CharAt() / ASCIICharAt(): 取 code point
//   - FindCharOffsets(): 扫描字符边界，供 *Offsets 变体复用
//
// 示例：
//
//	src := textbytes.AcquireText()
//	dst := textbytes.AcquireText()
//	defer textbytes.ReleaseText(src)
//	defer textbytes.ReleaseText(dst)
//
//	src.SetString("aÆ⁂𠜎")
//	if err := textbytes.UTF8Substring(dst, src, 3, 4); err != nil {
//	    // ...
//	}
//	fmt.Println(dst.String()) // 𠜎
package textbytes

import (
	"math"

	"github.com/riverfjs/textbytes-go/internal/scan"
)

// FindCharOffsets 扫描 src 的全部字符边界并写入 offs
//
// offs 先被清空再填充；扫描完整个 src 时末尾追加 EndOfText 哨兵。
// 结果只对 src 当前内容有效：内容一变（或同一 offs 被再次扫描）即失效。
//
// 参数:
//   - offs: 输出偏移量序列，由调用方持有（每个并发任务各一个实例）
//   - src: 源文本，视为合法的 UTF-8 字节流
//
// 返回:
//   - error: 遇到非法首字节时 *LeadByteError
func FindCharOffsets(offs *Offsets, src *Text) error {
	return scan.CharOffsets(offs, src.B, math.MaxInt)
}

// FindCharOffsetsN 与 FindCharOffsets 相同，但最多发现 maxChars 个字符
//
// 只需要前几个字符时避免扫描整个大缓冲区。因字符数达到上限而提前停止的
// 扫描不追加哨兵。
func FindCharOffsetsN(offs *Offsets, src *Text, maxChars int) error {
	return scan.CharOffsets(offs, src.B, maxChars)
}

// CharCount 返回 src 中 UTF-8 字符的个数
func CharCount(src *Text) (int, error) {
	offs := AcquireOffsets()
	defer ReleaseOffsets(offs)
	if err := scan.CharOffsets(offs, src.B, math.MaxInt); err != nil {
		return 0, err
	}
	return offs.CharCount(), nil
}
