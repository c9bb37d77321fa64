package catalog

var categories = []Category{
	{
		ID:          "weight-loss",
		Name:        "Weight Loss",
		Description: "Effective workouts to help you shed extra pounds",
		Color:       "from-red-400 to-orange-500",
		Icon:        "weight-lose",
		Levels: []Level{
			{
				ID:          "weight-loss-1",
				Name:        "Level 1",
				Description: "Getting Started with Weight Loss",
				VideoURL:    "https://www.youtube.com/embed/usDffbGGb_g",
				AvatarImage: "obese-avatar.png",
				Quiz: []QuizQuestion{
					{
						Question:      "How many exercises were demonstrated in the video?",
						Options:       []string{"2", "4", "6", "8"},
						CorrectAnswer: "6",
					},
					{
						Question:      "What is the primary focus of these exercises?",
						Options:       []string{"Muscle building", "Fat burning", "Flexibility", "Balance"},
						CorrectAnswer: "Fat burning",
					},
					{
						Question:      "How long should you do each exercise?",
						Options:       []string{"10 seconds", "30 seconds", "1 minute", "2 minutes"},
						CorrectAnswer: "30 seconds",
					},
				},
			},
			{
				ID:          "weight-loss-2",
				Name:        "Level 2",
				Description: "Intermediate Weight Loss Workout",
				VideoURL:    "https://www.youtube.com/embed/mZT86qHSM5c",
				AvatarImage: "overweight-avatar.png",
				Quiz: []QuizQuestion{
					{
						Question:      "What type of workout is this?",
						Options:       []string{"Yoga", "Pilates", "HIIT", "Strength Training"},
						CorrectAnswer: "HIIT",
					},
					{
						Question:      "What muscle groups does this workout target?",
						Options:       []string{"Just arms", "Just legs", "Core only", "Full body"},
						CorrectAnswer: "Full body",
					},
					{
						Question:      "Do you need equipment for this workout?",
						Options:       []string{"Yes, weights", "Yes, resistance bands", "Yes, a mat", "No equipment needed"},
						CorrectAnswer: "No equipment needed",
					},
				},
			},
			{
				ID:          "weight-loss-3",
				Name:        "Level 3",
				Description: "Advanced Weight Loss Routine",
				VideoURL:    "https://www.youtube.com/embed/d-KcXSg8wUU",
				AvatarImage: "fit-avatar.png",
				Quiz: []QuizQuestion{
					{
						Question:      "How many rounds of exercises are recommended?",
						Options:       []string{"1", "2", "3", "4"},
						CorrectAnswer: "3",
					},
					{
						Question:      "What is the rest time between exercises?",
						Options:       []string{"No rest", "15 seconds", "30 seconds", "1 minute"},
						CorrectAnswer: "15 seconds",
					},
					{
						Question:      "Which exercise targets the core the most?",
						Options:       []string{"Jumping jacks", "Burpees", "Mountain climbers", "Squats"},
						CorrectAnswer: "Mountain climbers",
					},
				},
			},
		},
	},
	{
		ID:          "meditation",
		Name:        "Meditation",
		Description: "Calm your mind and reduce stress with guided meditation",
		Color:       "from-blue-400 to-purple-500",
		Icon:        "meditation",
		Levels: []Level{
			{
				ID:          "meditation-1",
				Name:        "Level 1",
				Description: "Introduction to Meditation",
				VideoURL:    "https://www.youtube.com/embed/O-6f5wQXSu8",
				AvatarImage: "beginner-meditation-avatar.png",
				Quiz: []QuizQuestion{
					{
						Question:      "What is the recommended posture for meditation?",
						Options:       []string{"Lying down", "Standing", "Sitting with a straight back", "Any position"},
						CorrectAnswer: "Sitting with a straight back",
					},
					{
						Question:      "What should you focus on during basic meditation?",
						Options:       []string{"Your thoughts", "Your breath", "External sounds", "Your heartbeat"},
						CorrectAnswer: "Your breath",
					},
					{
						Question:      "How long was the guided meditation in the video?",
						Options:       []string{"5 minutes", "10 minutes", "15 minutes", "20 minutes"},
						CorrectAnswer: "10 minutes",
					},
				},
			},
			{
				ID:          "meditation-2",
				Name:        "Level 2",
				Description: "Mindfulness Meditation",
				VideoURL:    "https://www.youtube.com/embed/ZToicYcHIOU",
				AvatarImage: "intermediate-meditation-avatar.png",
				Quiz: []QuizQuestion{
					{
						Question:      "What is mindfulness meditation primarily about?",
						Options:       []string{"Sleeping better", "Being aware of the present moment", "Visualizing success", "Chanting mantras"},
						CorrectAnswer: "Being aware of the present moment",
					},
					{
						Question:      "What should you do when your mind wanders during meditation?",
						Options:       []string{"Give up and try again later", "Force yourself to focus", "Gently bring attention back to your breath", "Switch to a different technique"},
						CorrectAnswer: "Gently bring attention back to your breath",
					},
					{
						Question:      "How often should you practice meditation for best results?",
						Options:       []string{"Once a month", "Once a week", "Daily", "Only when stressed"},
						CorrectAnswer: "Daily",
					},
				},
			},
			{
				ID:          "meditation-3",
				Name:        "Level 3",
				Description: "Advanced Meditation Techniques",
				VideoURL:    "https://www.youtube.com/embed/wirV265ZYSw",
				AvatarImage: "advanced-meditation-avatar.png",
				Quiz: []QuizQuestion{
					{
						Question:      "What is the body scan technique used for?",
						Options:       []string{"Medical diagnosis", "Relaxing each part of the body", "Energizing the body", "Flexibility"},
						CorrectAnswer: "Relaxing each part of the body",
					},
					{
						Question:      "What is loving-kindness meditation focused on?",
						Options:       []string{"Self-love only", "Sending good wishes to others", "Romantic relationships", "Material success"},
						CorrectAnswer: "Sending good wishes to others",
					},
					{
						Question:      "What is a common challenge in advanced meditation?",
						Options:       []string{"Finding comfortable clothes", "Maintaining focus for longer periods", "Finding the right music", "Meditating with others"},
						CorrectAnswer: "Maintaining focus for longer periods",
					},
				},
			},
		},
	},
	{
		ID:          "weight-gain",
		Name:        "Weight Gain",
		Description: "Build muscle and increase your strength",
		Color:       "from-green-400 to-blue-500",
		Icon:        "weight-gain",
		Levels: []Level{
			{
				ID:          "weight-gain-1",
				Name:        "Level 1",
				Description: "Beginner's Muscle Building",
				VideoURL:    "https://www.youtube.com/embed/F46ZpTM8h7g",
				AvatarImage: "skinny-avatar.png",
				Quiz: []QuizQuestion{
					{
						Question:      "What exercise targets the chest muscles?",
						Options:       []string{"Squats", "Push-ups", "Lunges", "Crunches"},
						CorrectAnswer: "Push-ups",
					},
					{
						Question:      "How many reps are recommended for beginners?",
						Options:       []string{"5-8", "8-12", "15-20", "As many as possible"},
						CorrectAnswer: "8-12",
					},
					{
						Question:      "How many days per week should you train each muscle group?",
						Options:       []string{"Every day", "1-2 times", "2-3 times", "Once a week"},
						CorrectAnswer: "2-3 times",
					},
				},
			},
			{
				ID:          "weight-gain-2",
				Name:        "Level 2",
				Description: "Intermediate Strength Training",
				VideoURL:    "https://www.youtube.com/embed/8LJ3T5Wy5yg",
				AvatarImage: "fit-avatar.png",
				Quiz: []QuizQuestion{
					{
						Question:      "Which exercise is a compound movement?",
						Options:       []string{"Bicep curls", "Leg extensions", "Squats", "Calf raises"},
						CorrectAnswer: "Squats",
					},
					{
						Question:      "What is progressive overload?",
						Options:       []string{"Doing too many exercises", "Gradually increasing weight or reps", "Working out daily", "Training to failure"},
						CorrectAnswer: "Gradually increasing weight or reps",
					},
					{
						Question:      "What macronutrient is most important for muscle building?",
						Options:       []string{"Carbohydrates", "Fats", "Protein", "Fiber"},
						CorrectAnswer: "Protein",
					},
				},
			},
			{
				ID:          "weight-gain-3",
				Name:        "Level 3",
				Description: "Advanced Mass Building",
				VideoURL:    "https://www.youtube.com/embed/PYpLzUm9p1k",
				AvatarImage: "muscular-avatar.png",
				Quiz: []QuizQuestion{
					{
						Question:      "What is time under tension?",
						Options:       []string{"How long you're at the gym", "The total time your muscles are working during a set", "How long you rest between sets", "How long you've been working out"},
						CorrectAnswer: "The total time your muscles are working during a set",
					},
					{
						Question:      "What is a drop set?",
						Options:       []string{"Decreasing the weight during a set", "Dropping the weights on the floor", "Reducing your workout time", "Missing a workout"},
						CorrectAnswer: "Decreasing the weight during a set",
					},
					{
						Question:      "How much protein is typically recommended for muscle building (per pound of bodyweight)?",
						Options:       []string{"0.5g", "0.8-1g", "1.5-2g", "3g"},
						CorrectAnswer: "0.8-1g",
					},
				},
			},
		},
	},
	{
		ID:          "figure-management",
		Name:        "Figure Management",
		Description: "Tone your body and improve your physique",
		Color:       "from-yellow-400 to-orange-500",
		Icon:        "activity",
		Levels: []Level{
			{
				ID:          "figure-management-1",
				Name:        "Level 1",
				Description: "Body Toning Basics",
				VideoURL:    "https://www.youtube.com/embed/3Pr6n-nKfMA",
				AvatarImage: "beginner-fitness-avatar.png",
				Quiz: []QuizQuestion{
					{
						Question:      "What is body toning focused on?",
						Options:       []string{"Just losing weight", "Building huge muscles", "Defining muscles and improving shape", "Flexibility only"},
						CorrectAnswer: "Defining muscles and improving shape",
					},
					{
						Question:      "Which exercise helps tone the abdominal muscles?",
						Options:       []string{"Bicep curls", "Shoulder press", "Planks", "Tricep dips"},
						CorrectAnswer: "Planks",
					},
					{
						Question:      "How does body toning differ from bodybuilding?",
						Options:       []string{"It's the same thing", "Toning focuses on definition rather than size", "Toning is only for women", "Bodybuilding is easier"},
						CorrectAnswer: "Toning focuses on definition rather than size",
					},
				},
			},
			{
				ID:          "figure-management-2",
				Name:        "Level 2",
				Description: "Sculpting Your Physique",
				VideoURL:    "https://www.youtube.com/embed/7tRiB6g0Yas",
				AvatarImage: "intermediate-fitness-avatar.png",
				Quiz: []QuizQuestion{
					{
						Question:      "What is the recommended rep range for toning exercises?",
						Options:       []string{"1-5 reps", "8-12 reps", "12-15 reps", "20+ reps"},
						CorrectAnswer: "12-15 reps",
					},
					{
						Question:      "What type of cardio is best for maintaining muscle while toning?",
						Options:       []string{"High-intensity interval training (HIIT)", "Long distance running", "Walking", "Swimming"},
						CorrectAnswer: "High-intensity interval training (HIIT)",
					},
					{
						Question:      "Why is proper form important in toning exercises?",
						Options:       []string{"It looks better", "It targets the specific muscles better", "It makes the workout easier", "It doesn't matter"},
						CorrectAnswer: "It targets the specific muscles better",
					},
				},
			},
			{
				ID:          "figure-management-3",
				Name:        "Level 3",
				Description: "Advanced Body Sculpting",
				VideoURL:    "https://www.youtube.com/embed/QiuTvy5Yl3Q",
				AvatarImage: "toned-fitness-avatar.png",
				Quiz: []QuizQuestion{
					{
						Question:      "What is superset training?",
						Options:       []string{"Doing one exercise at a time", "Performing two exercises back-to-back with no rest", "Taking extra rest between sets", "Using heavy weights"},
						CorrectAnswer: "Performing two exercises back-to-back with no rest",
					},
					{
						Question:      "Why is protein timing important for body toning?",
						Options:       []string{"It isn't important", "It helps with muscle recovery and growth", "It helps you sleep better", "It makes workouts easier"},
						CorrectAnswer: "It helps with muscle recovery and growth",
					},
					{
						Question:      "What role does diet play in achieving a toned physique?",
						Options:       []string{"Diet isn't important", "Diet is somewhat important", "Diet is equally important as exercise", "Diet is more important than exercise"},
						CorrectAnswer: "Diet is equally important as exercise",
					},
				},
			},
		},
	},
	{
		ID:          "yoga",
		Name:        "Yoga",
		Description: "Improve flexibility, strength and mental wellbeing",
		Color:       "from-pink-400 to-red-500",
		Icon:        "yoga",
		Levels: []Level{
			{
				ID:          "yoga-1",
				Name:        "Level 1",
				Description: "Yoga for Beginners",
				VideoURL:    "https://www.youtube.com/embed/v7AYKMP6rOE",
				AvatarImage: "beginner-yoga-avatar.png",
				Quiz: []QuizQuestion{
					{
						Question:      "What is the name of the basic resting pose in yoga?",
						Options:       []string{"Warrior", "Child's pose", "Downward dog", "Tree pose"},
						CorrectAnswer: "Child's pose",
					},
					{
						Question:      "What should you focus on during yoga practice?",
						Options:       []string{"Speed of movements", "Competition with others", "Breath and alignment", "How far you can stretch"},
						CorrectAnswer: "Breath and alignment",
					},
					{
						Question:      "What is the purpose of Savasana (Corpse Pose)?",
						Options:       []string{"Warm up", "Cool down and integration", "Build strength", "Improve balance"},
						CorrectAnswer: "Cool down and integration",
					},
				},
			},
			{
				ID:          "yoga-2",
				Name:        "Level 2",
				Description: "Intermediate Yoga Flow",
				VideoURL:    "https://www.youtube.com/embed/9kOCY0KNByw",
				AvatarImage: "intermediate-yoga-avatar.png",
				Quiz: []QuizQuestion{
					{
						Question:      "What does 'vinyasa' mean in yoga?",
						Options:       []string{"Relaxation", "Breath synchronized movement", "Holding poses", "Meditation"},
						CorrectAnswer: "Breath synchronized movement",
					},
					{
						Question:      "What is the Sun Salutation sequence?",
						Options:       []string{"A warm-up routine", "A cool-down routine", "A type of yoga mat", "A breathing exercise"},
						CorrectAnswer: "A warm-up routine",
					},
					{
						Question:      "Which pose is known as 'Downward Facing Dog'?",
						Options:       []string{"Lying flat on your back", "Balancing on one leg", "An inverted V shape with hands and feet on the ground", "Sitting cross-legged"},
						CorrectAnswer: "An inverted V shape with hands and feet on the ground",
					},
				},
			},
			{
				ID:          "yoga-3",
				Name:        "Level 3",
				Description: "Advanced Yoga Practices",
				VideoURL:    "https://www.youtube.com/embed/Pppg_4AMIZI",
				AvatarImage: "advanced-yoga-avatar.png",
				Quiz: []QuizQuestion{
					{
						Question:      "What is an inversion in yoga?",
						Options:       []string{"A twisting pose", "A pose where your heart is higher than your head", "A pose performed on one leg", "A pose lying down"},
						CorrectAnswer: "A pose where your heart is higher than your head",
					},
					{
						Question:      "What is important when attempting advanced yoga poses?",
						Options:       []string{"Pushing through pain", "Having a strong foundation in basic poses", "Comparing yourself to others", "Doing it without instruction"},
						CorrectAnswer: "Having a strong foundation in basic poses",
					},
					{
						Question:      "What is a common advanced yoga breathing technique?",
						Options:       []string{"Normal breathing", "Mouth breathing", "Ujjayi breath", "Holding your breath"},
						CorrectAnswer: "Ujjayi breath",
					},
				},
			},
		},
	},
}

var consultants = []Consultant{
	{
		ID:         "c1",
		Name:       "Dr. Sarah Johnson",
		Specialty:  "Nutrition & Weight Management",
		Experience: "12 years",
		Rating:     4.9,
		Image:      "consultant-1.png",
		Bio:        "Dr. Johnson specializes in creating personalized nutrition plans that work with your lifestyle. She has helped thousands of clients achieve sustainable weight loss and improved health.",
	},
	{
		ID:         "c2",
		Name:       "Michael Chen",
		Specialty:  "Strength & Conditioning",
		Experience: "8 years",
		Rating:     4.8,
		Image:      "consultant-2.png",
		Bio:        "Former professional athlete turned fitness consultant, Michael excels at designing strength programs for all levels. His holistic approach combines traditional and modern training methods.",
	},
	{
		ID:         "c3",
		Name:       "Aisha Patel",
		Specialty:  "Yoga & Meditation",
		Experience: "15 years",
		Rating:     4.9,
		Image:      "consultant-3.png",
		Bio:        "Aisha is a certified yoga instructor and mindfulness coach who helps clients reduce stress and improve mental clarity through ancient practices adapted for modern life.",
	},
	{
		ID:         "c4",
		Name:       "Robert Garcia",
		Specialty:  "Physical Therapy & Rehabilitation",
		Experience: "10 years",
		Rating:     4.7,
		Image:      "consultant-4.png",
		Bio:        "Robert specializes in helping clients recover from injuries and manage chronic conditions through targeted exercise and movement therapy.",
	},
}
