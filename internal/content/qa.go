package content

import "strings"

// Answer is a topical reply with its supporting scripture references.
type Answer struct {
	Question   string
	Answer     string
	References []string
}

type qaEntry struct {
	keywords []string
	answer   Answer
}

var qaEntries = []qaEntry{
	{
		keywords: []string{"love", "god loves", "god's love", "loved", "loving"},
		answer: Answer{
			Question: "How much does God love us?",
			Answer:   "God's love for us is immeasurable and unconditional. He demonstrated His love by sending His Son to die for us while we were still sinners.",
			References: []string{
				"John 3:16 - 'For God so loved the world that he gave his one and only Son, that whoever believes in him shall not perish but have eternal life.'",
				"Romans 5:8 - 'But God demonstrates his own love for us in this: While we were still sinners, Christ died for us.'",
				"1 John 4:9-10 - 'This is how God showed his love among us: He sent his one and only Son into the world that we might live through him.'",
			},
		},
	},
	{
		keywords: []string{"forgiveness", "forgive", "forgiven", "forgiving", "sin", "sins"},
		answer: Answer{
			Question: "How can I be forgiven?",
			Answer:   "God offers forgiveness through faith in Jesus Christ. When we confess our sins and believe in Him, we receive complete forgiveness.",
			References: []string{
				"1 John 1:9 - 'If we confess our sins, he is faithful and just and will forgive us our sins and purify us from all unrighteousness.'",
				"Ephesians 1:7 - 'In him we have redemption through his blood, the forgiveness of sins, in accordance with the riches of God's grace.'",
				"Acts 3:19 - 'Repent, then, and turn to God, so that your sins may be wiped out.'",
			},
		},
	},
	{
		keywords: []string{"salvation", "saved", "save", "eternal life", "heaven"},
		answer: Answer{
			Question: "How can I be saved?",
			Answer:   "Salvation comes through faith in Jesus Christ. Believe in Him, confess with your mouth, and you will be saved.",
			References: []string{
				"Romans 10:9 - 'If you declare with your mouth, \"Jesus is Lord,\" and believe in your heart that God raised him from the dead, you will be saved.'",
				"John 14:6 - 'Jesus answered, \"I am the way and the truth and the life. No one comes to the Father except through me.\"'",
				"Acts 16:31 - 'They replied, \"Believe in the Lord Jesus, and you will be saved.\"'",
			},
		},
	},
	{
		keywords: []string{"prayer", "pray", "praying", "how to pray"},
		answer: Answer{
			Question: "How should I pray?",
			Answer:   "Pray with faith, sincerity, and according to God's will. Jesus taught us to pray with persistence and trust in our Heavenly Father.",
			References: []string{
				"Matthew 6:9-13 - The Lord's Prayer: 'Our Father in heaven, hallowed be your name...'",
				"Philippians 4:6 - 'Do not be anxious about anything, but in every situation, by prayer and petition, with thanksgiving, present your requests to God.'",
				"1 John 5:14 - 'This is the confidence we have in approaching God: that if we ask anything according to his will, he hears us.'",
			},
		},
	},
	{
		keywords: []string{"fear", "afraid", "worry", "anxiety", "worried", "anxious"},
		answer: Answer{
			Question: "What should I do when I'm afraid or worried?",
			Answer:   "Trust in God and cast your anxieties on Him. He is with you and will never leave you. Perfect love drives out fear.",
			References: []string{
				"Philippians 4:6-7 - 'Do not be anxious about anything, but in every situation, by prayer and petition, with thanksgiving, present your requests to God. And the peace of God, which transcends all understanding, will guard your hearts and your minds in Christ Jesus.'",
				"Isaiah 41:10 - 'So do not fear, for I am with you; do not be dismayed, for I am your God. I will strengthen you and help you.'",
				"1 John 4:18 - 'There is no fear in love. But perfect love drives out fear.'",
			},
		},
	},
	{
		keywords: []string{"hope", "hopeless", "despair", "discouraged"},
		answer: Answer{
			Question: "Where can I find hope?",
			Answer:   "Our hope is found in Jesus Christ. He is our anchor and the source of eternal hope that never disappoints.",
			References: []string{
				"Jeremiah 29:11 - 'For I know the plans I have for you,\" declares the Lord, \"plans to prosper you and not to harm you, plans to give you hope and a future.\"'",
				"Romans 15:13 - 'May the God of hope fill you with all joy and peace as you trust in him, so that you may overflow with hope by the power of the Holy Spirit.'",
				"Hebrews 6:19 - 'We have this hope as an anchor for the soul, firm and secure.'",
			},
		},
	},
	{
		keywords: []string{"strength", "weak", "weakness", "tired", "exhausted"},
		answer: Answer{
			Question: "How can I find strength?",
			Answer:   "God is our strength and refuge. When we are weak, He is strong. We can do all things through Christ who strengthens us.",
			References: []string{
				"Philippians 4:13 - 'I can do all this through him who gives me strength.'",
				"Isaiah 40:31 - 'But those who hope in the Lord will renew their strength. They will soar on wings like eagles.'",
				"2 Corinthians 12:9 - 'But he said to me, \"My grace is sufficient for you, for my power is made perfect in weakness.\"'",
			},
		},
	},
	{
		keywords: []string{"peace", "peaceful", "trouble", "troubles"},
		answer: Answer{
			Question: "How can I have peace?",
			Answer:   "True peace comes from God through Jesus Christ. Trust in Him and His peace will guard your heart and mind.",
			References: []string{
				"John 14:27 - 'Peace I leave with you; my peace I give you. I do not give to you as the world gives. Do not let your hearts be troubled and do not be afraid.'",
				"Philippians 4:7 - 'And the peace of God, which transcends all understanding, will guard your hearts and your minds in Christ Jesus.'",
				"Isaiah 26:3 - 'You will keep in perfect peace those whose minds are steadfast, because they trust in you.'",
			},
		},
	},
	{
		keywords: []string{"purpose", "meaning", "life purpose", "why am i here"},
		answer: Answer{
			Question: "What is my purpose in life?",
			Answer:   "Our purpose is to love God, serve others, and share the good news of Jesus Christ. We were created to glorify God.",
			References: []string{
				"Ecclesiastes 12:13 - 'Now all has been heard; here is the conclusion of the matter: Fear God and keep his commandments, for this is the duty of all mankind.'",
				"Matthew 22:37-39 - 'Love the Lord your God with all your heart... Love your neighbor as yourself.'",
				"1 Corinthians 10:31 - 'So whether you eat or drink or whatever you do, do it all for the glory of God.'",
			},
		},
	},
	{
		keywords: []string{"faith", "believe", "believing", "trust"},
		answer: Answer{
			Question: "What is faith?",
			Answer:   "Faith is confidence in what we hope for and assurance about what we do not see. It is trusting in God's promises.",
			References: []string{
				"Hebrews 11:1 - 'Now faith is confidence in what we hope for and assurance about what we do not see.'",
				"Ephesians 2:8-9 - 'For it is by grace you have been saved, through faith—and this is not from yourselves, it is the gift of God.'",
				"Mark 11:22 - 'Have faith in God,\" Jesus answered.'",
			},
		},
	},
	{
		keywords: []string{"temptation", "tempted", "sin", "resist"},
		answer: Answer{
			Question: "How can I resist temptation?",
			Answer:   "God provides a way out of every temptation. Rely on His strength, stay in His Word, and pray for help.",
			References: []string{
				"1 Corinthians 10:13 - 'No temptation has overtaken you except what is common to mankind. And God is faithful; he will not let you be tempted beyond what you can bear.'",
				"Matthew 26:41 - 'Watch and pray so that you will not fall into temptation. The spirit is willing, but the flesh is weak.'",
				"James 4:7 - 'Submit yourselves, then, to God. Resist the devil, and he will flee from you.'",
			},
		},
	},
	{
		keywords: []string{"suffering", "pain", "hurt", "suffer", "why do i suffer"},
		answer: Answer{
			Question: "Why do we suffer?",
			Answer:   "Suffering is part of a fallen world, but God uses it for our good and His glory. He comforts us in our troubles and works all things together for good.",
			References: []string{
				"Romans 8:28 - 'And we know that in all things God works for the good of those who love him, who have been called according to his purpose.'",
				"2 Corinthians 1:3-4 - 'Praise be to the God and Father of our Lord Jesus Christ, the Father of compassion and the God of all comfort, who comforts us in all our troubles.'",
				"1 Peter 5:10 - 'And the God of all grace, who called you to his eternal glory in Christ, after you have suffered a little while, will himself restore you.'",
			},
		},
	},
	{
		keywords: []string{"death", "die", "dying", "afterlife", "heaven", "hell"},
		answer: Answer{
			Question: "What happens after death?",
			Answer:   "For those who believe in Jesus, there is eternal life in heaven. Those who reject Him face eternal separation from God.",
			References: []string{
				"John 11:25-26 - 'Jesus said to her, \"I am the resurrection and the life. The one who believes in me will live, even though they die.\"'",
				"Revelation 21:4 - 'He will wipe every tear from their eyes. There will be no more death or mourning or crying or pain.'",
				"John 14:2-3 - 'My Father's house has many rooms... I am going there to prepare a place for you.'",
			},
		},
	},
	{
		keywords: []string{"money", "wealth", "rich", "poor", "finances"},
		answer: Answer{
			Question: "What does the Bible say about money?",
			Answer:   "Money itself is not evil, but the love of money is. We should be good stewards, be generous, and trust God to provide our needs.",
			References: []string{
				"1 Timothy 6:10 - 'For the love of money is a root of all kinds of evil.'",
				"Matthew 6:24 - 'No one can serve two masters... You cannot serve both God and money.'",
				"Proverbs 22:9 - 'The generous will themselves be blessed, for they share their food with the poor.'",
			},
		},
	},
	{
		keywords: []string{"marriage", "husband", "wife", "spouse", "wedding"},
		answer: Answer{
			Question: "What does the Bible say about marriage?",
			Answer:   "Marriage is a sacred covenant between a man and woman, designed to reflect Christ's relationship with the church. It requires love, respect, and commitment.",
			References: []string{
				"Ephesians 5:25 - 'Husbands, love your wives, just as Christ loved the church and gave himself up for her.'",
				"Genesis 2:24 - 'That is why a man leaves his father and mother and is united to his wife, and they become one flesh.'",
				"1 Corinthians 13:4-7 - 'Love is patient, love is kind...'",
			},
		},
	},
	{
		keywords: []string{"wisdom", "wise", "foolish", "understanding"},
		answer: Answer{
			Question: "How can I gain wisdom?",
			Answer:   "Wisdom comes from God. Fear the Lord, seek Him, and ask for wisdom. His Word is the source of true wisdom.",
			References: []string{
				"Proverbs 9:10 - 'The fear of the Lord is the beginning of wisdom, and knowledge of the Holy One is understanding.'",
				"James 1:5 - 'If any of you lacks wisdom, you should ask God, who gives generously to all without finding fault.'",
				"Proverbs 2:6 - 'For the Lord gives wisdom; from his mouth come knowledge and understanding.'",
			},
		},
	},
	{
		keywords: []string{"anger", "angry", "rage", "wrath"},
		answer: Answer{
			Question: "How should I handle anger?",
			Answer:   "Be slow to anger and quick to forgive. Don't let anger control you or lead you to sin. Be patient and self-controlled.",
			References: []string{
				"Ephesians 4:26 - 'In your anger do not sin: Do not let the sun go down while you are still angry.'",
				"James 1:19-20 - 'My dear brothers and sisters, take note of this: Everyone should be quick to listen, slow to speak and slow to become angry, because human anger does not produce the righteousness that God desires.'",
				"Proverbs 15:1 - 'A gentle answer turns away wrath, but a harsh word stirs up anger.'",
			},
		},
	},
	{
		keywords: []string{"gratitude", "thankful", "thanks", "grateful", "thankfulness"},
		answer: Answer{
			Question: "Why should I be thankful?",
			Answer:   "Gratitude honors God and transforms our perspective. We should give thanks in all circumstances because God is good.",
			References: []string{
				"1 Thessalonians 5:18 - 'Give thanks in all circumstances; for this is God's will for you in Christ Jesus.'",
				"Psalm 107:1 - 'Give thanks to the Lord, for he is good; his love endures forever.'",
				"Colossians 3:15 - 'Let the peace of Christ rule in your hearts... And be thankful.'",
			},
		},
	},
	{
		keywords: []string{"holy spirit", "spirit", "holy ghost", "comforter"},
		answer: Answer{
			Question: "Who is the Holy Spirit?",
			Answer:   "The Holy Spirit is the third person of the Trinity, sent by Jesus to guide, comfort, and empower believers. He lives within us.",
			References: []string{
				"John 14:26 - 'But the Advocate, the Holy Spirit, whom the Father will send in my name, will teach you all things.'",
				"Acts 1:8 - 'But you will receive power when the Holy Spirit comes on you.'",
				"Romans 8:11 - 'And if the Spirit of him who raised Jesus from the dead is living in you, he who raised Christ from the dead will also give life to your mortal bodies.'",
			},
		},
	},
	{
		keywords: []string{"grace", "mercy", "favor"},
		answer: Answer{
			Question: "What is grace?",
			Answer:   "Grace is God's unmerited favor and love toward us. We don't deserve it, but He gives it freely through Jesus Christ.",
			References: []string{
				"Ephesians 2:8-9 - 'For it is by grace you have been saved, through faith—and this is not from yourselves, it is the gift of God—not by works, so that no one can boast.'",
				"2 Corinthians 12:9 - 'But he said to me, \"My grace is sufficient for you, for my power is made perfect in weakness.\"'",
				"Romans 3:24 - 'and all are justified freely by his grace through the redemption that came by Christ Jesus.'",
			},
		},
	},
}

// FindAnswer scores each topic by the number of its keywords contained in
// the text and returns the highest-scoring one. A topic needs at least one
// keyword hit to match.
func FindAnswer(text string) (Answer, bool) {
	lower := strings.ToLower(text)

	best := -1
	bestScore := 0
	for i := range qaEntries {
		score := 0
		for _, keyword := range qaEntries[i].keywords {
			if strings.Contains(lower, keyword) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = i
		}
	}

	if best < 0 {
		return Answer{}, false
	}
	return qaEntries[best].answer, true
}

// Topics lists every question the Q&A table can answer.
func Topics() []string {
	topics := make([]string, 0, len(qaEntries))
	for i := range qaEntries {
		topics = append(topics, qaEntries[i].answer.Question)
	}
	return topics
}
