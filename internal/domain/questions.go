package domain

// builtinQuestions is the fixed bank: five questions per category and difficulty.
var builtinQuestions = []Question{
	{ID: "science-easy-1", Text: "What is the symbol for water?", Category: CategoryScience, Difficulty: DifficultyEasy, Answer: "H2O"},
	{ID: "science-easy-2", Text: "What gas do plants breathe in?", Category: CategoryScience, Difficulty: DifficultyEasy, Answer: "Carbon Dioxide"},
	{ID: "science-easy-3", Text: "What star is closest to Earth?", Category: CategoryScience, Difficulty: DifficultyEasy, Answer: "Sun"},
	{ID: "science-easy-4", Text: "What planet is blue?", Category: CategoryScience, Difficulty: DifficultyEasy, Answer: "Earth"},
	{ID: "science-easy-5", Text: "How many legs do insects have?", Category: CategoryScience, Difficulty: DifficultyEasy, Answer: "6"},
	{ID: "science-medium-1", Text: "What planet is known as the Red Planet?", Category: CategoryScience, Difficulty: DifficultyMedium, Answer: "Mars"},
	{ID: "science-medium-2", Text: "What gas do humans need to breathe?", Category: CategoryScience, Difficulty: DifficultyMedium, Answer: "Oxygen"},
	{ID: "science-medium-3", Text: "Human body has how many bones?", Category: CategoryScience, Difficulty: DifficultyMedium, Answer: "206"},
	{ID: "science-medium-4", Text: "What is the speed of light?", Category: CategoryScience, Difficulty: DifficultyMedium, Answer: "300000 km/s"},
	{ID: "science-medium-5", Text: "What force keeps us on Earth?", Category: CategoryScience, Difficulty: DifficultyMedium, Answer: "Gravity"},
	{ID: "science-hard-1", Text: "What particle has a negative charge?", Category: CategoryScience, Difficulty: DifficultyHard, Answer: "Electron"},
	{ID: "science-hard-2", Text: "What is the heaviest naturally occurring element?", Category: CategoryScience, Difficulty: DifficultyHard, Answer: "Uranium"},
	{ID: "science-hard-3", Text: "What is the powerhouse of the cell?", Category: CategoryScience, Difficulty: DifficultyHard, Answer: "Mitochondria"},
	{ID: "science-hard-4", Text: "What is Newton's 3rd law?", Category: CategoryScience, Difficulty: DifficultyHard, Answer: "Every action has an equal and opposite reaction"},
	{ID: "science-hard-5", Text: "What is the hardest natural substance?", Category: CategoryScience, Difficulty: DifficultyHard, Answer: "Diamond"},
	{ID: "history-easy-1", Text: "Who discovered America?", Category: CategoryHistory, Difficulty: DifficultyEasy, Answer: "Christopher Columbus"},
	{ID: "history-easy-2", Text: "Who was the first President of the USA?", Category: CategoryHistory, Difficulty: DifficultyEasy, Answer: "George Washington"},
	{ID: "history-easy-3", Text: "Which country built the Great Wall?", Category: CategoryHistory, Difficulty: DifficultyEasy, Answer: "China"},
	{ID: "history-easy-4", Text: "Who invented the light bulb?", Category: CategoryHistory, Difficulty: DifficultyEasy, Answer: "Thomas Edison"},
	{ID: "history-easy-5", Text: "Who was the first man on the moon?", Category: CategoryHistory, Difficulty: DifficultyEasy, Answer: "Neil Armstrong"},
	{ID: "history-medium-1", Text: "When did World War II end?", Category: CategoryHistory, Difficulty: DifficultyMedium, Answer: "1945"},
	{ID: "history-medium-2", Text: "Who was known as Iron Lady?", Category: CategoryHistory, Difficulty: DifficultyMedium, Answer: "Margaret Thatcher"},
	{ID: "history-medium-3", Text: "Which empire built Machu Picchu?", Category: CategoryHistory, Difficulty: DifficultyMedium, Answer: "Inca"},
	{ID: "history-medium-4", Text: "Who was the first Mughal Emperor of India?", Category: CategoryHistory, Difficulty: DifficultyMedium, Answer: "Babur"},
	{ID: "history-medium-5", Text: "Who wrote the Constitution of India?", Category: CategoryHistory, Difficulty: DifficultyMedium, Answer: "BR Ambedkar"},
	{ID: "history-hard-1", Text: "Who discovered penicillin?", Category: CategoryHistory, Difficulty: DifficultyHard, Answer: "Alexander Fleming"},
	{ID: "history-hard-2", Text: "When did the Roman Empire fall?", Category: CategoryHistory, Difficulty: DifficultyHard, Answer: "476 AD"},
	{ID: "history-hard-3", Text: "When was the Battle of Hastings?", Category: CategoryHistory, Difficulty: DifficultyHard, Answer: "1066"},
	{ID: "history-hard-4", Text: "Who was Cleopatra?", Category: CategoryHistory, Difficulty: DifficultyHard, Answer: "Queen of Egypt"},
	{ID: "history-hard-5", Text: "Who was the last Tsar of Russia?", Category: CategoryHistory, Difficulty: DifficultyHard, Answer: "Nicholas II"},
	{ID: "funfacts-easy-1", Text: "Which animal says meow?", Category: CategoryFunFacts, Difficulty: DifficultyEasy, Answer: "Cat"},
	{ID: "funfacts-easy-2", Text: "Which animal barks?", Category: CategoryFunFacts, Difficulty: DifficultyEasy, Answer: "Dog"},
	{ID: "funfacts-easy-3", Text: "What is the tallest mammal?", Category: CategoryFunFacts, Difficulty: DifficultyEasy, Answer: "Giraffe"},
	{ID: "funfacts-easy-4", Text: "Which food is yellow and curved?", Category: CategoryFunFacts, Difficulty: DifficultyEasy, Answer: "Banana"},
	{ID: "funfacts-easy-5", Text: "Which animal can fly?", Category: CategoryFunFacts, Difficulty: DifficultyEasy, Answer: "Bird"},
	{ID: "funfacts-medium-1", Text: "Which animal sleeps 18 hours a day?", Category: CategoryFunFacts, Difficulty: DifficultyMedium, Answer: "Koala"},
	{ID: "funfacts-medium-2", Text: "What fruit has its seeds on the outside?", Category: CategoryFunFacts, Difficulty: DifficultyMedium, Answer: "Strawberry"},
	{ID: "funfacts-medium-3", Text: "Which animal has 3 hearts?", Category: CategoryFunFacts, Difficulty: DifficultyMedium, Answer: "Octopus"},
	{ID: "funfacts-medium-4", Text: "What is the fastest bird?", Category: CategoryFunFacts, Difficulty: DifficultyMedium, Answer: "Peregrine Falcon"},
	{ID: "funfacts-medium-5", Text: "What is the only mammal that can fly?", Category: CategoryFunFacts, Difficulty: DifficultyMedium, Answer: "Bat"},
	{ID: "funfacts-hard-1", Text: "What animal cannot jump?", Category: CategoryFunFacts, Difficulty: DifficultyHard, Answer: "Elephant"},
	{ID: "funfacts-hard-2", Text: "What is the rarest blood type?", Category: CategoryFunFacts, Difficulty: DifficultyHard, Answer: "AB Negative"},
	{ID: "funfacts-hard-3", Text: "What is the only food that never spoils?", Category: CategoryFunFacts, Difficulty: DifficultyHard, Answer: "Honey"},
	{ID: "funfacts-hard-4", Text: "What country has the most pyramids?", Category: CategoryFunFacts, Difficulty: DifficultyHard, Answer: "Sudan"},
	{ID: "funfacts-hard-5", Text: "What is largest ocean?", Category: CategoryFunFacts, Difficulty: DifficultyHard, Answer: "Pacific"},
}

// BuiltinQuestions returns a copy of the builtin question bank.
func BuiltinQuestions() []Question {
	return append([]Question(nil), builtinQuestions...)
}

// FilterQuestions keeps the questions matching both category and difficulty exactly.
func FilterQuestions(questions []Question, category Category, difficulty Difficulty) []Question {
	var pool []Question
	for _, q := range questions {
		if q.Category == category && q.Difficulty == difficulty {
			pool = append(pool, q)
		}
	}
	return pool
}
