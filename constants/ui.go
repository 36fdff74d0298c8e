package constants

// Terminal Layout
const (
	// CellWidth is the terminal columns used per board tile (keeps tiles roughly square)
	CellWidth = 2

	// BorderSize is the frame drawn around the board on each side
	BorderSize = 1

	// StatusBarHeight is the rows reserved above the board for score display
	StatusBarHeight = 1

	// HelpBarHeight is the rows reserved below the board for key help
	HelpBarHeight = 1
)

// Board size in terminal cells including border and bars
const (
	BoardScreenWidth  = TileCount*CellWidth + 2*BorderSize
	BoardScreenHeight = TileCount + 2*BorderSize + StatusBarHeight + HelpBarHeight
)

// Food pulse animation: brightness follows sin(frame * FoodPulseRate)
const (
	FoodPulseRate = 0.1
)
