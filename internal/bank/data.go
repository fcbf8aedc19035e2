package bank

import "github.com/abhisek/quizkid/internal/quiz"

// curated holds the hand-written fallback sets, two per module. Correct
// indexes are spread across positions so fallback batches don't telegraph
// the answer slot.
var curated = map[string][][]quiz.Question{
	"letters": {
		{
			q("Which letter comes right after A?", []string{"C", "B", "D", "E"}, 1,
				"The alphabet starts A, B, C. B comes right after A.", quiz.DifficultyEasy, "alphabet order"),
			q("Which of these is a vowel?", []string{"B", "T", "E", "K"}, 2,
				"The vowels are A, E, I, O, U. E is a vowel.", quiz.DifficultyEasy, "vowels"),
			q("What letter does the word 'Sun' start with?", []string{"S", "N", "U", "T"}, 0,
				"'Sun' starts with the letter S.", quiz.DifficultyEasy, "first letters"),
			q("Which letter is the last one in the alphabet?", []string{"X", "W", "Y", "Z"}, 3,
				"The alphabet ends with Z.", quiz.DifficultyEasy, "alphabet order"),
			q("How many vowels are in the word 'cat'?", []string{"One", "Two", "Three", "Zero"}, 0,
				"'Cat' has one vowel: the letter A.", quiz.DifficultyMedium, "vowels"),
		},
		{
			q("Which letter comes right before M?", []string{"N", "K", "L", "J"}, 2,
				"The alphabet goes K, L, M. L comes right before M.", quiz.DifficultyMedium, "alphabet order"),
			q("What letter does the word 'Dog' start with?", []string{"G", "D", "B", "O"}, 1,
				"'Dog' starts with the letter D.", quiz.DifficultyEasy, "first letters"),
			q("Which word starts with the same letter as 'Ball'?", []string{"Cat", "Fish", "Bear", "Duck"}, 2,
				"'Ball' and 'Bear' both start with B.", quiz.DifficultyMedium, "first letters"),
			q("Which of these is NOT a vowel?", []string{"A", "O", "I", "R"}, 3,
				"A, O, and I are vowels. R is a consonant.", quiz.DifficultyMedium, "vowels"),
			q("What is the first letter of the alphabet?", []string{"A", "B", "Z", "E"}, 0,
				"The alphabet begins with A.", quiz.DifficultyEasy, "alphabet order"),
		},
	},
	"numbers": {
		{
			q("What is 2 + 3?", []string{"4", "6", "5", "7"}, 2,
				"2 + 3 = 5. Count up three from two: 3, 4, 5.", quiz.DifficultyEasy, "addition"),
			q("Which number comes after 9?", []string{"10", "8", "11", "19"}, 0,
				"Counting up: 8, 9, 10. Ten comes after nine.", quiz.DifficultyEasy, "counting"),
			q("What is 10 - 4?", []string{"5", "6", "7", "4"}, 1,
				"10 - 4 = 6. Count down four from ten: 9, 8, 7, 6.", quiz.DifficultyMedium, "subtraction"),
			q("Which number is the biggest?", []string{"12", "21", "9", "15"}, 1,
				"21 is bigger than 15, 12, and 9.", quiz.DifficultyMedium, "comparison"),
			q("How many sides does a pair have?", []string{"Three", "One", "Four", "Two"}, 3,
				"A pair always means two.", quiz.DifficultyEasy, "counting"),
		},
		{
			q("What is 4 + 4?", []string{"6", "8", "7", "9"}, 1,
				"4 + 4 = 8. Doubling four gives eight.", quiz.DifficultyEasy, "addition"),
			q("Which number comes before 7?", []string{"8", "5", "6", "9"}, 2,
				"Counting up: 5, 6, 7. Six comes right before seven.", quiz.DifficultyEasy, "counting"),
			q("What is 3 + 3 + 3?", []string{"9", "6", "12", "8"}, 0,
				"3 + 3 = 6, and 6 + 3 = 9.", quiz.DifficultyMedium, "addition"),
			q("Which number is the smallest?", []string{"14", "8", "11", "25"}, 1,
				"8 is smaller than 11, 14, and 25.", quiz.DifficultyMedium, "comparison"),
			q("What is 5 - 5?", []string{"Five", "One", "Ten", "Zero"}, 3,
				"Taking five away from five leaves zero.", quiz.DifficultyEasy, "subtraction"),
		},
	},
	"colors": {
		{
			q("What color do you get by mixing red and yellow?", []string{"Orange", "Green", "Purple", "Brown"}, 0,
				"Red and yellow mix to make orange.", quiz.DifficultyMedium, "color mixing"),
			q("What color is a ripe banana?", []string{"Red", "Yellow", "Blue", "Green"}, 1,
				"Ripe bananas are yellow.", quiz.DifficultyEasy, "everyday colors"),
			q("What color is the sky on a sunny day?", []string{"Green", "Orange", "Blue", "Pink"}, 2,
				"On a clear sunny day the sky looks blue.", quiz.DifficultyEasy, "everyday colors"),
			q("Which color do you get by mixing blue and yellow?", []string{"Purple", "Orange", "Pink", "Green"}, 3,
				"Blue and yellow mix to make green.", quiz.DifficultyMedium, "color mixing"),
			q("What color is grass?", []string{"Green", "Blue", "Red", "Purple"}, 0,
				"Healthy grass is green.", quiz.DifficultyEasy, "everyday colors"),
		},
		{
			q("What color do you get by mixing red and blue?", []string{"Green", "Purple", "Orange", "Yellow"}, 1,
				"Red and blue mix to make purple.", quiz.DifficultyMedium, "color mixing"),
			q("What color is a fire truck?", []string{"Blue", "Green", "Red", "Yellow"}, 2,
				"Fire trucks are usually bright red.", quiz.DifficultyEasy, "everyday colors"),
			q("What color is snow?", []string{"White", "Gray", "Blue", "Silver"}, 0,
				"Fresh snow is white.", quiz.DifficultyEasy, "everyday colors"),
			q("Which of these is a primary color?", []string{"Orange", "Green", "Purple", "Blue"}, 3,
				"The primary colors are red, yellow, and blue.", quiz.DifficultyHard, "color theory"),
			q("What color is a pumpkin?", []string{"Pink", "Orange", "Blue", "Black"}, 1,
				"Pumpkins are orange.", quiz.DifficultyEasy, "everyday colors"),
		},
	},
	"shapes": {
		{
			q("How many sides does a triangle have?", []string{"Four", "Two", "Three", "Five"}, 2,
				"A triangle has three sides and three corners.", quiz.DifficultyEasy, "counting sides"),
			q("Which shape is perfectly round?", []string{"Circle", "Square", "Triangle", "Rectangle"}, 0,
				"A circle is round with no corners at all.", quiz.DifficultyEasy, "shape names"),
			q("How many sides does a square have?", []string{"Three", "Four", "Five", "Six"}, 1,
				"A square has four equal sides.", quiz.DifficultyEasy, "counting sides"),
			q("What shape is a stop sign?", []string{"Circle", "Square", "Triangle", "Octagon"}, 3,
				"A stop sign is an octagon, a shape with eight sides.", quiz.DifficultyHard, "shapes around us"),
			q("Which shape has no corners?", []string{"Circle", "Triangle", "Square", "Rectangle"}, 0,
				"A circle is smooth all the way around with no corners.", quiz.DifficultyMedium, "shape names"),
		},
		{
			q("How many corners does a rectangle have?", []string{"Three", "Six", "Four", "Five"}, 2,
				"A rectangle has four corners, just like a square.", quiz.DifficultyEasy, "counting sides"),
			q("What shape is a ball?", []string{"Cube", "Sphere", "Cone", "Cylinder"}, 1,
				"A ball is a sphere, round in every direction.", quiz.DifficultyMedium, "3d shapes"),
			q("How many sides does a hexagon have?", []string{"Six", "Five", "Seven", "Eight"}, 0,
				"A hexagon has six sides, like a honeycomb cell.", quiz.DifficultyHard, "counting sides"),
			q("What shape is a slice of pizza?", []string{"Square", "Circle", "Star", "Triangle"}, 3,
				"A pizza slice looks like a triangle.", quiz.DifficultyEasy, "shapes around us"),
			q("Which shape has exactly five points?", []string{"Star", "Square", "Hexagon", "Circle"}, 0,
				"A classic star shape has five points.", quiz.DifficultyMedium, "shape names"),
		},
	},
	"animals": {
		{
			q("Which animal says 'moo'?", []string{"Pig", "Cow", "Duck", "Sheep"}, 1,
				"Cows say moo. Pigs oink, ducks quack, sheep baa.", quiz.DifficultyEasy, "animal sounds"),
			q("Which animal has a very long neck?", []string{"Giraffe", "Elephant", "Lion", "Zebra"}, 0,
				"Giraffes have long necks to reach leaves high in trees.", quiz.DifficultyEasy, "animal features"),
			q("Where do fish live?", []string{"Trees", "Caves", "Water", "Nests"}, 2,
				"Fish live in water and breathe through gills.", quiz.DifficultyEasy, "animal homes"),
			q("Which animal sleeps all winter?", []string{"Dog", "Horse", "Cat", "Bear"}, 3,
				"Bears hibernate, sleeping through the cold winter months.", quiz.DifficultyMedium, "animal habits"),
			q("Which of these animals can fly?", []string{"Owl", "Frog", "Snake", "Rabbit"}, 0,
				"Owls are birds and fly at night.", quiz.DifficultyEasy, "animal features"),
		},
		{
			q("Which animal says 'quack'?", []string{"Chicken", "Goose", "Duck", "Turkey"}, 2,
				"Ducks say quack.", quiz.DifficultyEasy, "animal sounds"),
			q("Which animal has black and white stripes?", []string{"Zebra", "Lion", "Bear", "Hippo"}, 0,
				"Zebras are known for their black and white stripes.", quiz.DifficultyEasy, "animal features"),
			q("What do caterpillars turn into?", []string{"Bees", "Butterflies", "Ants", "Spiders"}, 1,
				"A caterpillar builds a chrysalis and becomes a butterfly.", quiz.DifficultyMedium, "animal life cycles"),
			q("Which animal is the biggest in the ocean?", []string{"Shark", "Dolphin", "Octopus", "Blue whale"}, 3,
				"The blue whale is the largest animal that has ever lived.", quiz.DifficultyMedium, "ocean animals"),
			q("Which animal carries its house on its back?", []string{"Snail", "Mouse", "Bird", "Frog"}, 0,
				"A snail's shell is its home, carried everywhere it goes.", quiz.DifficultyEasy, "animal homes"),
		},
	},
}

func q(prompt string, options []string, correct int, explanation string, d quiz.Difficulty, topic string) quiz.Question {
	return quiz.Question{
		Prompt:       prompt,
		Options:      options,
		CorrectIndex: correct,
		Explanation:  explanation,
		Difficulty:   d,
		Topic:        topic,
	}
}
