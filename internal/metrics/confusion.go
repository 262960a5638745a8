package metrics

// Confusion accumulates a square count matrix indexed [actual][predicted].
// Its Value is the macro-averaged recall across classes that appeared.
type Confusion struct {
	name    string
	classes int
	counts  [][]int
}

func NewConfusion(classes int) *Confusion {
	c := &Confusion{name: "confusion", classes: classes}
	c.Reset()
	return c
}

func (c *Confusion) Name() string { return c.name }

func (c *Confusion) Observe(predicted, actual int) {
	if predicted < 0 || predicted >= c.classes || actual < 0 || actual >= c.classes {
		return
	}
	c.counts[actual][predicted]++
}

// Count returns how often actual was classified as predicted.
func (c *Confusion) Count(actual, predicted int) int {
	return c.counts[actual][predicted]
}

// Recall returns the fraction of samples of the given class that were
// classified correctly, or 0 if the class never appeared.
func (c *Confusion) Recall(class int) float64 {
	total := 0
	for _, n := range c.counts[class] {
		total += n
	}
	if total == 0 {
		return 0
	}
	return float64(c.counts[class][class]) / float64(total)
}

func (c *Confusion) Value() float64 {
	sum := 0.0
	seen := 0
	for class := 0; class < c.classes; class++ {
		total := 0
		for _, n := range c.counts[class] {
			total += n
		}
		if total == 0 {
			continue
		}
		sum += float64(c.counts[class][class]) / float64(total)
		seen++
	}
	if seen == 0 {
		return 0
	}
	return sum / float64(seen)
}

func (c *Confusion) Reset() {
	c.counts = make([][]int, c.classes)
	for i := range c.counts {
		c.counts[i] = make([]int, c.classes)
	}
}
