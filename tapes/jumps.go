package tapes

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/reusee/tapecode/programs"
	"lukechampine.com/blake3"
)

// JumpTable maps the position of every bracket to the position of its partner.
// Other positions hold -1.
type JumpTable []int

// BuildJumpTable pairs the brackets of code.
// An unpaired bracket is a fault positioned at that bracket.
func BuildJumpTable(code []rune) (JumpTable, error) {
	table := make(JumpTable, len(code))
	var opens []int
	for i, r := range code {
		table[i] = -1
		switch programs.Op(r) {
		case programs.LoopStart:
			opens = append(opens, i)
		case programs.LoopEnd:
			if len(opens) == 0 {
				return nil, &Fault{
					Err:    ErrUnmatchedClose,
					Pos:    i,
					Symbol: r,
				}
			}
			open := opens[len(opens)-1]
			opens = opens[:len(opens)-1]
			table[open] = i
			table[i] = open
		}
	}
	if len(opens) > 0 {
		return nil, &Fault{
			Err:    ErrUnmatchedOpen,
			Pos:    opens[0],
			Symbol: rune(programs.LoopStart),
		}
	}
	return table, nil
}

// JumpCache keeps the jump tables of recently run programs, keyed by the blake3 sum of the program.
type JumpCache struct {
	tables *lru.Cache[[32]byte, JumpTable]
}

func NewJumpCache(size int) (*JumpCache, error) {
	tables, err := lru.New[[32]byte, JumpTable](size)
	if err != nil {
		return nil, err
	}
	return &JumpCache{
		tables: tables,
	}, nil
}

func (c *JumpCache) Get(program programs.Program, code []rune) (JumpTable, error) {
	if c == nil {
		return BuildJumpTable(code)
	}
	key := blake3.Sum256([]byte(program))
	if table, ok := c.tables.Get(key); ok {
		return table, nil
	}
	table, err := BuildJumpTable(code)
	if err != nil {
		return nil, err
	}
	c.tables.Add(key, table)
	return table, nil
}

func (c *JumpCache) Len() int {
	return c.tables.Len()
}
