package content

import "strings"

type Verse struct {
	Reference string
	Text      string
}

var verses = []Verse{
	{"John 3:16", "For God so loved the world that he gave his one and only Son, that whoever believes in him shall not perish but have eternal life."},
	{"Psalm 23:1", "The Lord is my shepherd, I lack nothing."},
	{"Philippians 4:13", "I can do all this through him who gives me strength."},
	{"Jeremiah 29:11", "For I know the plans I have for you, declares the Lord, plans to prosper you and not to harm you, plans to give you hope and a future."},
	{"Romans 8:28", "And we know that in all things God works for the good of those who love him, who have been called according to his purpose."},
	{"Proverbs 3:5", "Trust in the Lord with all your heart and lean not on your own understanding."},
	{"Isaiah 40:31", "But those who hope in the Lord will renew their strength. They will soar on wings like eagles; they will run and not grow weary, they will walk and not be faint."},
	{"Joshua 1:9", "Be strong and courageous. Do not be afraid; do not be discouraged, for the Lord your God will be with you wherever you go."},
	{"Matthew 11:28", "Come to me, all you who are weary and burdened, and I will give you rest."},
	{"Psalm 46:1", "God is our refuge and strength, an ever-present help in trouble."},
	{"2 Timothy 1:7", "For the Spirit God gave us does not make us timid, but gives us power, love and self-discipline."},
	{"Lamentations 3:22-23", "Because of the Lord's great love we are not consumed, for his compassions never fail. They are new every morning; great is your faithfulness."},
}

// VerseOfTheDay rotates through the verse table by day of year.
func VerseOfTheDay(day int) Verse {
	if day < 1 {
		day = 1
	}
	return verses[(day-1)%len(verses)]
}

// SearchVerses returns verses whose text or reference contains the keyword,
// case-insensitive.
func SearchVerses(keyword string) []Verse {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return nil
	}

	var matches []Verse
	for _, v := range verses {
		if strings.Contains(strings.ToLower(v.Text), keyword) ||
			strings.Contains(strings.ToLower(v.Reference), keyword) {
			matches = append(matches, v)
		}
	}
	return matches
}

// VerseByReference looks up a verse by its expanded reference.
func VerseByReference(reference string) (Verse, bool) {
	reference = strings.ToLower(strings.TrimSpace(ExpandReference(reference)))
	for _, v := range verses {
		if strings.ToLower(v.Reference) == reference {
			return v, true
		}
	}
	return Verse{}, false
}
