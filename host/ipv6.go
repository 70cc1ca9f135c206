package host

import (
	"errors"
	"strings"
)

var errIPv6Malformed = errors.New("malformed IPv6 address")

// parseIPv6 implements the IPv6 literal grammar of SPEC_FULL.md §4.3: RFC
// 4291 syntax with the WHATWG concession that the last two of the eight
// 16-bit pieces may instead be written as a dotted IPv4 quad, and with a
// trailing zone ID (introduced by '%') discarded rather than parsed. Input
// has already had its enclosing '[' ']' stripped by the caller.
func parseIPv6(s string) (addr [16]byte, err error) {
	if i := strings.IndexByte(s, '%'); i >= 0 {
		s = s[:i]
	}

	var pieces [8]uint16
	pieceIndex := 0
	compress := -1
	pointer := 0
	n := len(s)

	if n >= 1 && s[0] == ':' {
		if n < 2 || s[1] != ':' {
			return addr, errIPv6Malformed
		}
		pointer += 2
		pieceIndex++
		compress = pieceIndex
	}

	for pointer < n {
		if pieceIndex == 8 {
			return addr, errIPv6Malformed
		}
		if s[pointer] == ':' {
			if compress != -1 {
				return addr, errIPv6Malformed
			}
			pointer++
			pieceIndex++
			compress = pieceIndex
			continue
		}

		value := 0
		length := 0
		for length < 4 && pointer < n && isHex(s[pointer]) {
			value = value*16 + hexVal(s[pointer])
			pointer++
			length++
		}

		if pointer < n && s[pointer] == '.' {
			if length == 0 {
				return addr, errIPv6Malformed
			}
			pointer -= length
			if pieceIndex > 6 {
				return addr, errIPv6Malformed
			}

			numbersSeen := 0
			for pointer < n {
				ipv4Piece := -1
				if numbersSeen > 0 {
					if s[pointer] == '.' && numbersSeen < 4 {
						pointer++
					} else {
						return addr, errIPv6Malformed
					}
				}
				if pointer >= n || !isDigit(s[pointer]) {
					return addr, errIPv6Malformed
				}
				for pointer < n && isDigit(s[pointer]) {
					digit := int(s[pointer] - '0')
					switch {
					case ipv4Piece == -1:
						ipv4Piece = digit
					case ipv4Piece == 0:
						return addr, errIPv6Malformed
					default:
						ipv4Piece = ipv4Piece*10 + digit
					}
					if ipv4Piece > 255 {
						return addr, errIPv6Malformed
					}
					pointer++
				}
				pieces[pieceIndex] = pieces[pieceIndex]*0x100 + uint16(ipv4Piece)
				numbersSeen++
				if numbersSeen == 2 || numbersSeen == 4 {
					pieceIndex++
				}
			}
			if numbersSeen != 4 {
				return addr, errIPv6Malformed
			}
			break
		} else if pointer < n && s[pointer] == ':' {
			pointer++
			if pointer >= n {
				return addr, errIPv6Malformed
			}
		} else if pointer < n {
			return addr, errIPv6Malformed
		}

		pieces[pieceIndex] = uint16(value)
		pieceIndex++
	}

	if compress != -1 {
		swaps := pieceIndex - compress
		tail := 7
		for tail != 0 && swaps > 0 {
			pieces[tail], pieces[compress+swaps-1] = pieces[compress+swaps-1], pieces[tail]
			tail--
			swaps--
		}
	} else if pieceIndex != 8 {
		return addr, errIPv6Malformed
	}

	for i, p := range pieces {
		addr[2*i] = byte(p >> 8)
		addr[2*i+1] = byte(p)
	}
	return addr, nil
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}

// formatIPv6 renders addr in RFC 5952 canonical form: lowercase hex groups
// with no leading zeros, the single longest run of zero groups (length >=
// 2) compressed to "::", ties broken in favor of the first such run.
func formatIPv6(addr [16]byte) string {
	var pieces [8]uint16
	for i := range pieces {
		pieces[i] = uint16(addr[2*i])<<8 | uint16(addr[2*i+1])
	}

	start, length := longestZeroRun(pieces)

	var b strings.Builder
	i := 0
	for i < 8 {
		if i == start && length > 1 {
			// The group after the run writes its own leading ':', so only
			// a run that reaches the last group needs both colons here.
			if i+length == 8 {
				b.WriteString("::")
			} else {
				b.WriteByte(':')
			}
			i += length
			continue
		}
		if i > 0 {
			b.WriteByte(':')
		}
		b.WriteString(formatHexGroup(pieces[i]))
		i++
	}
	return b.String()
}

func longestZeroRun(pieces [8]uint16) (start, length int) {
	bestStart, bestLen := -1, 0
	curStart, curLen := -1, 0
	for i, p := range pieces {
		if p == 0 {
			if curStart == -1 {
				curStart = i
			}
			curLen++
			if curLen > bestLen {
				bestStart, bestLen = curStart, curLen
			}
		} else {
			curStart, curLen = -1, 0
		}
	}
	if bestLen < 2 {
		return -1, 0
	}
	return bestStart, bestLen
}

const hexDigits = "0123456789abcdef"

func formatHexGroup(v uint16) string {
	if v == 0 {
		return "0"
	}
	var buf [4]byte
	n := 0
	for v > 0 {
		buf[n] = hexDigits[v&0xF]
		v >>= 4
		n++
	}
	// reverse
	for l, r := 0, n-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}
	return string(buf[:n])
}
