package content

import (
	"dbb/internal/models"
	"math/rand"
)

// QuestionBank is the static multiple-choice question table. Draws are
// uniform over the filtered set and deliberately unseeded: the first caller
// of the day fixes the daily question for everyone.
type QuestionBank struct {
	questions []models.Question
}

func NewQuestionBank() *QuestionBank {
	return &QuestionBank{questions: quizQuestions}
}

func (qb *QuestionBank) Total() int {
	return len(qb.questions)
}

// ByIndex returns a copy of the question at index, or nil when out of range.
func (qb *QuestionBank) ByIndex(index int) *models.Question {
	if index < 0 || index >= len(qb.questions) {
		return nil
	}
	q := qb.questions[index]
	return &q
}

// Random draws one question uniformly, optionally filtered by difficulty
// and/or category. The returned index addresses the full bank. Returns nil
// when no question matches the filters.
func (qb *QuestionBank) Random(difficulty, category string) (*models.Question, int) {
	matching := make([]int, 0, len(qb.questions))
	for i, q := range qb.questions {
		if difficulty != "" && q.Difficulty != difficulty {
			continue
		}
		if category != "" && q.Category != category {
			continue
		}
		matching = append(matching, i)
	}
	if len(matching) == 0 {
		return nil, -1
	}
	index := matching[rand.Intn(len(matching))]
	q := qb.questions[index]
	return &q, index
}

var quizQuestions = []models.Question{
	{
		Question:   "Who built the ark?",
		Options:    []string{"Noah", "Moses", "Abraham", "David"},
		Correct:    0,
		Reference:  "Genesis 6:14-22",
		Difficulty: "easy",
		Category:   "old_testament",
	},
	{
		Question:   "Who was the first man created by God?",
		Options:    []string{"Noah", "Adam", "Abraham", "Moses"},
		Correct:    1,
		Reference:  "Genesis 2:7",
		Difficulty: "easy",
		Category:   "old_testament",
	},
	{
		Question:   "What was the name of the garden where Adam and Eve lived?",
		Options:    []string{"Garden of Gethsemane", "Garden of Eden", "Garden of Babylon", "Garden of Paradise"},
		Correct:    1,
		Reference:  "Genesis 2:8",
		Difficulty: "easy",
		Category:   "old_testament",
	},
	{
		Question:   "Who was thrown into a lions' den?",
		Options:    []string{"Daniel", "David", "Joseph", "Moses"},
		Correct:    0,
		Reference:  "Daniel 6:16",
		Difficulty: "easy",
		Category:   "old_testament",
	},
	{
		Question:   "What was the name of the sea that Moses parted?",
		Options:    []string{"Red Sea", "Dead Sea", "Mediterranean Sea", "Sea of Galilee"},
		Correct:    0,
		Reference:  "Exodus 14:21",
		Difficulty: "easy",
		Category:   "old_testament",
	},
	{
		Question:   "Who was sold into slavery by his brothers?",
		Options:    []string{"Moses", "Joseph", "David", "Daniel"},
		Correct:    1,
		Reference:  "Genesis 37:28",
		Difficulty: "easy",
		Category:   "old_testament",
	},
	{
		Question:   "Who was swallowed by a great fish?",
		Options:    []string{"Moses", "Jonah", "Daniel", "Noah"},
		Correct:    1,
		Reference:  "Jonah 1:17",
		Difficulty: "easy",
		Category:   "old_testament",
	},
	{
		Question:   "How many days did God take to create the world?",
		Options:    []string{"Five", "Six", "Seven", "Eight"},
		Correct:    1,
		Reference:  "Genesis 1:31",
		Difficulty: "easy",
		Category:   "old_testament",
	},
	{
		Question:   "Who defeated the giant Goliath?",
		Options:    []string{"Saul", "Jonathan", "David", "Samson"},
		Correct:    2,
		Reference:  "1 Samuel 17:50",
		Difficulty: "easy",
		Category:   "old_testament",
	},
	{
		Question:   "In which town was Jesus born?",
		Options:    []string{"Nazareth", "Jerusalem", "Bethlehem", "Capernaum"},
		Correct:    2,
		Reference:  "Matthew 2:1",
		Difficulty: "easy",
		Category:   "new_testament",
	},
	{
		Question:   "How many disciples did Jesus choose?",
		Options:    []string{"Ten", "Eleven", "Twelve", "Thirteen"},
		Correct:    2,
		Reference:  "Luke 6:13",
		Difficulty: "easy",
		Category:   "new_testament",
	},
	{
		Question:   "Who baptized Jesus?",
		Options:    []string{"Peter", "John the Baptist", "James", "Andrew"},
		Correct:    1,
		Reference:  "Matthew 3:13-17",
		Difficulty: "easy",
		Category:   "new_testament",
	},
	{
		Question:   "Who denied Jesus three times?",
		Options:    []string{"Judas", "Thomas", "Peter", "John"},
		Correct:    2,
		Reference:  "Luke 22:61",
		Difficulty: "easy",
		Category:   "new_testament",
	},
	{
		Question:   "What did Jesus turn water into at the wedding in Cana?",
		Options:    []string{"Oil", "Wine", "Milk", "Honey"},
		Correct:    1,
		Reference:  "John 2:9",
		Difficulty: "easy",
		Category:   "new_testament",
	},
	{
		Question:   "How many years did the Israelites wander in the wilderness?",
		Options:    []string{"20", "30", "40", "50"},
		Correct:    2,
		Reference:  "Numbers 14:33",
		Difficulty: "medium",
		Category:   "old_testament",
	},
	{
		Question:   "Which prophet was taken to heaven in a whirlwind?",
		Options:    []string{"Elisha", "Elijah", "Isaiah", "Jeremiah"},
		Correct:    1,
		Reference:  "2 Kings 2:11",
		Difficulty: "medium",
		Category:   "old_testament",
	},
	{
		Question:   "Who was the mother of Samuel?",
		Options:    []string{"Ruth", "Hannah", "Naomi", "Esther"},
		Correct:    1,
		Reference:  "1 Samuel 1:20",
		Difficulty: "medium",
		Category:   "old_testament",
	},
	{
		Question:   "On which island was John when he received the Revelation?",
		Options:    []string{"Crete", "Cyprus", "Patmos", "Malta"},
		Correct:    2,
		Reference:  "Revelation 1:9",
		Difficulty: "medium",
		Category:   "new_testament",
	},
	{
		Question:   "Who was the tax collector that climbed a sycamore tree to see Jesus?",
		Options:    []string{"Matthew", "Zacchaeus", "Levi", "Simon"},
		Correct:    1,
		Reference:  "Luke 19:4",
		Difficulty: "medium",
		Category:   "new_testament",
	},
	{
		Question:   "In which city were the disciples first called Christians?",
		Options:    []string{"Jerusalem", "Rome", "Antioch", "Corinth"},
		Correct:    2,
		Reference:  "Acts 11:26",
		Difficulty: "medium",
		Category:   "new_testament",
	},
	{
		Question:   "Who was the father of Methuselah?",
		Options:    []string{"Enoch", "Lamech", "Jared", "Seth"},
		Correct:    0,
		Reference:  "Genesis 5:21",
		Difficulty: "hard",
		Category:   "old_testament",
	},
	{
		Question:   "Which king saw the writing on the wall?",
		Options:    []string{"Nebuchadnezzar", "Belshazzar", "Darius", "Cyrus"},
		Correct:    1,
		Reference:  "Daniel 5:5",
		Difficulty: "hard",
		Category:   "old_testament",
	},
	{
		Question:   "Who was the silversmith that stirred up a riot in Ephesus?",
		Options:    []string{"Demetrius", "Alexander", "Tychicus", "Trophimus"},
		Correct:    0,
		Reference:  "Acts 19:24",
		Difficulty: "hard",
		Category:   "new_testament",
	},
	{
		Question:   "To whom was the letter of Philemon addressed concerning?",
		Options:    []string{"Epaphras", "Onesimus", "Archippus", "Apphia"},
		Correct:    1,
		Reference:  "Philemon 1:10",
		Difficulty: "hard",
		Category:   "new_testament",
	},
}
