package textbytes

import "github.com/riverfjs/textbytes-go/internal/scan"

// UTF8Substring 按字符索引 [start, end) 提取 src 的子串写入 dst
//
// start/end 以 UTF-8 字符计（4 字节字符算一个字符），不是字节偏移。
// dst 原内容被替换；dst 与 src 可以是同一个缓冲区。只扫描到 end 边界
// 为止，不会为了取前几个字符扫完整个缓冲区。
//
// 参数:
//   - dst: 目标缓冲区
//   - src: 源文本
//   - start: 起始字符索引（含）
//   - end: 结束字符索引（不含），必须大于 start
//
// 返回:
//   - error: 越界时 *IndexError，首字节非法时 *LeadByteError
func UTF8Substring(dst, src *Text, start, end int) error {
	if start < 0 {
		return &IndexError{Index: start}
	}
	if end <= start {
		return &IndexError{Index: end}
	}

	offs := AcquireOffsets()
	defer ReleaseOffsets(offs)
	// 多扫一个边界，保证 end 的字节偏移（或哨兵）一定可解析
	if err := scan.CharOffsets(offs, src.B, end+1); err != nil {
		return err
	}
	return UTF8SubstringOffsets(dst, src, offs, start, end)
}

// UTF8SubstringOffsets 与 UTF8Substring 相同，但使用调用方预先扫描好的
// 偏移量序列，对同一源文本连续取多个子串时避免反复扫描
//
// 调用方须保证 offs 是针对 src 当前内容扫描的，并且覆盖到 end 边界
// （FindCharOffsetsN 的 maxChars 不小于 end+1，或做过全量扫描），
// 否则返回 *IndexError
func UTF8SubstringOffsets(dst, src *Text, offs *Offsets, start, end int) error {
	if start < 0 || start >= offs.CharCount() {
		return &IndexError{Index: start}
	}
	if end <= start {
		return &IndexError{Index: end}
	}
	if end >= offs.Len() {
		return &IndexError{Index: end}
	}

	startByte := offs.At(start)
	endByte := offs.Bound(end, src.Len())
	dst.Set(src.B[startByte:endByte])
	return nil
}

// ASCIISubstring 纯 ASCII 子串提取，一个字节即一个字符，不需要扫描
//
// 注意：与 UTF8Substring 不同，end <= start 不报错，而是静默产生空结果。
// 这一不对称沿用既有行为，由测试钉住。
//
// 返回:
//   - error: start < 0 或 end 超过 src 长度时 *IndexError
func ASCIISubstring(dst, src *Text, start, end int) error {
	if start < 0 {
		return &IndexError{Index: start}
	}
	if end > src.Len() {
		return &IndexError{Index: end}
	}
	if end <= start {
		dst.Reset()
		return nil
	}
	dst.Set(src.B[start:end])
	return nil
}
