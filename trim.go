package textbytes

import (
	"math"

	"github.com/riverfjs/textbytes-go/internal/scan"
)

// asciiSpace ASCII 空格码点；小于等于它的字节（C0 控制字符和空格）都算空白
const asciiSpace = 0x20

// ASCIITrim 去掉 src 首尾的空白字节（值 <= 0x20），结果写入 dst
//
// dst 与 src 可以是同一个缓冲区（原地裁剪）：裁剪边界先从原始字节
// 全部算好，之后才做唯一一次写入
func ASCIITrim(dst, src *Text) {
	b := src.B
	st, en := 0, len(b)
	for st < en && b[st] <= asciiSpace {
		st++
	}
	for st < en && b[en-1] <= asciiSpace {
		en--
	}
	dst.Set(b[st:en])
}

// ASCIITrimInPlace 原地裁剪 t 首尾的空白字节
func ASCIITrimInPlace(t *Text) {
	ASCIITrim(t, t)
}

// UTF8Trim 去掉 UTF-8 文本首尾的空白字符，结果写入 dst
//
// 空白判断仍按单字节比较（<= 0x20 的空白码点在 UTF-8 中必然是单字节
// 编码；续字节和多字节首字节都 >= 0x80，不可能被当成空白），但两端的
// 扫描以字符边界推进和回退，多字节字符从不作为空白被检查或裁掉。
// dst 与 src 可以是同一个缓冲区。
//
// 返回:
//   - error: src 含非法首字节时 *LeadByteError
func UTF8Trim(dst, src *Text) error {
	offs := AcquireOffsets()
	defer ReleaseOffsets(offs)
	if err := scan.CharOffsets(offs, src.B, math.MaxInt); err != nil {
		return err
	}

	b := src.B
	lo, hi := 0, offs.CharCount() // 以字符计
	for lo < hi {
		sb := offs.At(lo)
		if offs.Bound(lo+1, len(b))-sb != 1 || b[sb] > asciiSpace {
			break
		}
		lo++
	}
	for lo < hi {
		sb := offs.At(hi - 1)
		if offs.Bound(hi, len(b))-sb != 1 || b[sb] > asciiSpace {
			break
		}
		hi--
	}

	dst.Set(b[offs.Bound(lo, len(b)):offs.Bound(hi, len(b))])
	return nil
}

// UTF8TrimInPlace 原地裁剪 t 首尾的空白字符
func UTF8TrimInPlace(t *Text) error {
	return UTF8Trim(t, t)
}
