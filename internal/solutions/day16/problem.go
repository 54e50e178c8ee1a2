package day16

import (
	"context"
	"errors"
	"fmt"

	"github.com/zargony/advent-of-code-2021/internal/input"
	"github.com/zargony/advent-of-code-2021/internal/puzzle"
)

func init() {
	puzzle.Register(solver{})
}

type solver struct{}

func (solver) Day() int      { return 16 }
func (solver) Title() string { return "Packet Decoder" }

func (solver) Solve(ctx context.Context) ([]puzzle.Answer, error) {
	in, err := input.ForDay(16)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	line, err := in.Line()
	if err != nil {
		return nil, err
	}
	transmission, err := parsePacket(newBitstream(line))
	if err != nil {
		return nil, err
	}

	result, err := transmission.eval()
	if err != nil {
		return nil, err
	}

	return []puzzle.Answer{
		puzzle.Num("Version sum", transmission.versionSum()),
		puzzle.Num("Result", result),
	}, nil
}

var errOutOfData = errors.New("out of packet data")

// bitstream reads single bits from a string of hexadecimal digits.
type bitstream struct {
	digits string
	pos    int
}

func newBitstream(digits string) *bitstream {
	return &bitstream{digits: digits}
}

// bit reads the next single bit.
func (b *bitstream) bit() (uint64, error) {
	digit := b.pos / 4
	if digit >= len(b.digits) {
		return 0, errOutOfData
	}
	ch := b.digits[digit]
	var nibble uint64
	switch {
	case ch >= '0' && ch <= '9':
		nibble = uint64(ch - '0')
	case ch >= 'A' && ch <= 'F':
		nibble = uint64(ch-'A') + 10
	case ch >= 'a' && ch <= 'f':
		nibble = uint64(ch-'a') + 10
	default:
		return 0, fmt.Errorf("invalid hex digit %q", ch)
	}
	bit := nibble >> (3 - b.pos%4) & 1
	b.pos++
	return bit, nil
}

// number reads an n bit big-endian number.
func (b *bitstream) number(n int) (uint64, error) {
	var value uint64
	for i := 0; i < n; i++ {
		bit, err := b.bit()
		if err != nil {
			return 0, err
		}
		value = value<<1 | bit
	}
	return value, nil
}

// groupedNumber reads a literal value in five bit groups. The first bit of
// each group tells whether another group follows.
func (b *bitstream) groupedNumber() (uint64, error) {
	var value uint64
	for {
		more, err := b.bit()
		if err != nil {
			return 0, err
		}
		group, err := b.number(4)
		if err != nil {
			return 0, err
		}
		value = value<<4 | group
		if more == 0 {
			return value, nil
		}
	}
}

// typeID selects the operation a packet performs.
type typeID uint64

const (
	typeSum typeID = iota
	typeProduct
	typeMinimum
	typeMaximum
	typeLiteral
	typeGreaterThan
	typeLessThan
	typeEqualTo
)

// packet is one packet of the transmission. Literal packets carry a value,
// operator packets carry subpackets.
type packet struct {
	version uint64
	typeID  typeID
	value   uint64
	packets []packet
}

func parsePacket(b *bitstream) (packet, error) {
	version, err := b.number(3)
	if err != nil {
		return packet{}, err
	}
	id, err := b.number(3)
	if err != nil {
		return packet{}, err
	}
	p := packet{version: version, typeID: typeID(id)}
	if p.typeID == typeLiteral {
		p.value, err = b.groupedNumber()
	} else {
		p.packets, err = parsePacketList(b)
	}
	if err != nil {
		return packet{}, err
	}
	return p, nil
}

// parsePacketList reads the subpackets of an operator packet. Length type
// zero bounds them by total bit length, length type one by packet count.
func parsePacketList(b *bitstream) ([]packet, error) {
	lengthType, err := b.bit()
	if err != nil {
		return nil, err
	}
	if lengthType == 0 {
		length, err := b.number(15)
		if err != nil {
			return nil, err
		}
		end := b.pos + int(length)
		var packets []packet
		for b.pos < end {
			p, err := parsePacket(b)
			if err != nil {
				return nil, err
			}
			packets = append(packets, p)
		}
		if b.pos != end {
			return nil, fmt.Errorf("subpackets overrun their %d bit length", length)
		}
		return packets, nil
	}
	count, err := b.number(11)
	if err != nil {
		return nil, err
	}
	packets := make([]packet, 0, count)
	for i := uint64(0); i < count; i++ {
		p, err := parsePacket(b)
		if err != nil {
			return nil, err
		}
		packets = append(packets, p)
	}
	return packets, nil
}

// versionSum adds up the version numbers of the packet and all its
// subpackets.
func (p *packet) versionSum() uint64 {
	sum := p.version
	for i := range p.packets {
		sum += p.packets[i].versionSum()
	}
	return sum
}

// eval computes the value of the packet.
func (p *packet) eval() (uint64, error) {
	switch p.typeID {
	case typeLiteral:
		return p.value, nil
	case typeSum:
		var sum uint64
		for i := range p.packets {
			value, err := p.packets[i].eval()
			if err != nil {
				return 0, err
			}
			sum += value
		}
		return sum, nil
	case typeProduct:
		product := uint64(1)
		for i := range p.packets {
			value, err := p.packets[i].eval()
			if err != nil {
				return 0, err
			}
			product *= value
		}
		return product, nil
	case typeMinimum, typeMaximum:
		if len(p.packets) == 0 {
			return 0, errors.New("operator packet without subpackets")
		}
		best, err := p.packets[0].eval()
		if err != nil {
			return 0, err
		}
		for i := range p.packets[1:] {
			value, err := p.packets[1+i].eval()
			if err != nil {
				return 0, err
			}
			if (p.typeID == typeMinimum && value < best) || (p.typeID == typeMaximum && value > best) {
				best = value
			}
		}
		return best, nil
	case typeGreaterThan, typeLessThan, typeEqualTo:
		if len(p.packets) != 2 {
			return 0, fmt.Errorf("comparison packet needs two subpackets, has %d", len(p.packets))
		}
		first, err := p.packets[0].eval()
		if err != nil {
			return 0, err
		}
		second, err := p.packets[1].eval()
		if err != nil {
			return 0, err
		}
		result := false
		switch p.typeID {
		case typeGreaterThan:
			result = first > second
		case typeLessThan:
			result = first < second
		case typeEqualTo:
			result = first == second
		}
		if result {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("invalid packet type id %d", p.typeID)
}
