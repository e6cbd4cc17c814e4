package value

// BadgeTier — визуальный уровень предложения в UI.
type BadgeTier string

const (
	BadgeHot      BadgeTier = "hot"
	BadgeTrending BadgeTier = "trending"
	BadgeFresh    BadgeTier = "fresh"
)

func (b BadgeTier) String() string {
	return string(b)
}

type BadgeStyle struct {
	Tier BadgeTier
	Icon string
}

// Таблица порогов приоритета. Единственное место, где живут эти числа.
//
//nolint:gochecknoglobals,mnd
var badgeTable = []struct {
	minPriority int
	style       BadgeStyle
}{
	{15, BadgeStyle{Tier: BadgeHot, Icon: "🔥"}},
	{10, BadgeStyle{Tier: BadgeTrending, Icon: "📈"}},
	{0, BadgeStyle{Tier: BadgeFresh, Icon: "✨"}},
}

// BadgeForPriority отображает приоритет в стиль по таблице порогов.
func BadgeForPriority(priority int) BadgeStyle {
	for _, row := range badgeTable {
		if priority >= row.minPriority {
			return row.style
		}
	}

	// Отрицательный приоритет — тоже fresh.
	return badgeTable[len(badgeTable)-1].style
}
