package tip

// StarterTips are listed before any tip is drawn.
func StarterTips() []string {
	return []string{
		"Practice coding every day, even if it's just for 15 minutes",
		"Use console.log() to debug and understand your code",
		"Don't be afraid to make mistakes - they're part of learning!",
	}
}

// DefaultCatalog is the pool random tips are drawn from.
func DefaultCatalog() Catalog {
	return NewCatalog(
		"Break complex problems into smaller, manageable pieces",
		"Read other people's code to learn different approaches",
		"Build projects that interest you to stay motivated",
		"Join coding communities and don't hesitate to ask questions",
		"Learn to use browser developer tools effectively",
		"Practice explaining code concepts to reinforce learning",
		"Start with simple projects and gradually increase complexity",
	)
}
