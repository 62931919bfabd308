package scene

// MultiBlockDataSet is a composite geometry container holding an ordered
// set of blocks, each itself a DataObject (possibly composite). Composite
// containers are never serialized directly; they are flattened into a
// single PolyData first.
type MultiBlockDataSet struct {
	object
	blocks []DataObject
}

// NewMultiBlockDataSet creates an empty composite container.
func NewMultiBlockDataSet() *MultiBlockDataSet {
	return &MultiBlockDataSet{object: newObject()}
}

// ClassName returns the container's class tag.
func (m *MultiBlockDataSet) ClassName() string { return "vtkMultiBlockDataSet" }

// IsComposite reports true.
func (m *MultiBlockDataSet) IsComposite() bool { return true }

// AddBlock appends a block. Nil blocks are ignored.
func (m *MultiBlockDataSet) AddBlock(b DataObject) {
	if b != nil {
		m.blocks = append(m.blocks, b)
	}
}

// NumberOfBlocks returns the block count.
func (m *MultiBlockDataSet) NumberOfBlocks() int { return len(m.blocks) }

// Block returns the i-th block, or nil if out of range.
func (m *MultiBlockDataSet) Block(i int) DataObject {
	if i < 0 || i >= len(m.blocks) {
		return nil
	}
	return m.blocks[i]
}
