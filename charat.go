package textbytes

import (
	"math"

	"github.com/riverfjs/textbytes-go/internal/scan"
)

// ASCIICharAt 返回 index 处的 ASCII code point
//
// 假定 src 只含 ASCII 字符，直接按 7 位 ASCII 解释该位置的原始字节
//
// 返回:
//   - error: index 越界时 *IndexError
func ASCIICharAt(src *Text, index int) (rune, error) {
	if index < 0 || index >= src.Len() {
		return 0, &IndexError{Index: index}
	}
	return rune(src.B[index]), nil
}

// UTF8CharAt 返回第 index 个 UTF-8 字符的 Unicode code point
//
// 返回的是 code point 而不是 UTF-16 code unit：4 字节字符返回一个
// 完整的标量值（> 0xFFFF），不拆成代理对
//
// 返回:
//   - error: index 越界时 *IndexError，首字节非法时 *LeadByteError
func UTF8CharAt(src *Text, index int) (rune, error) {
	offs := AcquireOffsets()
	defer ReleaseOffsets(offs)
	if err := scan.CharOffsets(offs, src.B, math.MaxInt); err != nil {
		return 0, err
	}
	return UTF8CharAtOffsets(src, offs, index)
}

// UTF8CharAtOffsets 与 UTF8CharAt 相同，但使用调用方预先扫描好的
// 偏移量序列
//
// 字符的字节长度由相邻两个偏移量的差值决定（下一个偏移量是哨兵时用
// src 的总长度）；差值不在 1-4 之间说明序列已失效，返回 *OffsetDataError
func UTF8CharAtOffsets(src *Text, offs *Offsets, index int) (rune, error) {
	if index < 0 || index >= offs.CharCount() || index+1 >= offs.Len() {
		return 0, &IndexError{Index: index}
	}
	startByte := offs.At(index)
	endByte := offs.Bound(index+1, src.Len())
	return scan.CodePoint(src.B, startByte, endByte)
}
