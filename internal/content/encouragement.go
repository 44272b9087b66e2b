package content

var encouragements = []string{
	"Remember, God's love for you is unchanging and eternal. Trust in His plan for your life today!",
	"You are never alone. God is with you every step of the way, guiding and protecting you.",
	"Each new day is a gift from God. Embrace it with gratitude and faith!",
	"Your strength comes from the Lord. Lean on Him when you feel weak.",
	"God's grace is sufficient for you. His power is made perfect in weakness.",
	"Keep your eyes fixed on Jesus. He is the author and perfecter of your faith.",
	"Don't worry about tomorrow. God is already there, preparing the way for you.",
	"You are fearfully and wonderfully made. God has a unique purpose for your life.",
	"In every situation, give thanks. God is working all things together for your good.",
	"Stand firm in your faith. The Lord is your shield and your strength.",
	"Let your light shine today. You are a reflection of God's love to others.",
	"God's mercies are new every morning. Receive His fresh grace today!",
	"Cast all your anxiety on Him because He cares for you.",
	"The Lord will fight for you; you need only to be still.",
	"Seek first His kingdom and His righteousness, and all these things will be given to you.",
}

// EncouragementForDay rotates through the encouragement table so the same
// day always carries the same message.
func EncouragementForDay(day int) string {
	if day < 1 {
		day = 1
	}
	return encouragements[(day-1)%len(encouragements)]
}
