package services

// Canned assistant content. The plan tables are keyed by the catalog's
// category ids; every plan renders as its five lines joined by blank
// lines plus a fixed follow-up question.

const WelcomeMessage = "Hi there! I'm your FitVerse AI assistant. I can help you with diet plans, exercise recommendations, and fitness advice. How can I help you today?"

var dietKeywords = []string{"diet", "eat", "food", "meal", "nutrition"}

var exerciseKeywords = []string{"exercise", "workout", "training", "routine", "activity"}

var progressKeywords = []string{"progress", "goal", "target", "achieve"}

var dietPlans = map[string][]string{
	"weight-loss": {
		"**Breakfast:** Greek yogurt with berries and a sprinkle of chia seeds",
		"**Lunch:** Grilled chicken salad with mixed vegetables and olive oil dressing",
		"**Dinner:** Baked salmon with steamed broccoli and quinoa",
		"**Snacks:** Apple slices with a small handful of almonds, carrot sticks with hummus",
		"**Hydration:** Aim for at least 8 glasses of water daily, green tea is also excellent",
	},
	"weight-gain": {
		"**Breakfast:** Oatmeal with banana, peanut butter, and protein powder",
		"**Lunch:** Brown rice with grilled beef and mixed vegetables",
		"**Dinner:** Whole grain pasta with ground turkey meatballs and tomato sauce",
		"**Snacks:** Protein shake with milk and banana, Greek yogurt with honey and granola",
		"**Hydration:** Aim for at least 8 glasses of water daily, consider adding smoothies",
	},
	"figure-management": {
		"**Breakfast:** Egg white omelet with spinach and whole grain toast",
		"**Lunch:** Tuna salad with mixed greens and light vinaigrette",
		"**Dinner:** Grilled chicken breast with sweet potato and steamed vegetables",
		"**Snacks:** Cottage cheese with fruit, protein bar",
		"**Hydration:** Aim for at least 8 glasses of water daily, limit sugary drinks",
	},
	"yoga": {
		"**Breakfast:** Overnight oats with fruit and nuts",
		"**Lunch:** Quinoa bowl with roasted vegetables and avocado",
		"**Dinner:** Vegetable stir-fry with tofu and brown rice",
		"**Snacks:** Fresh fruit, nuts, or seeds",
		"**Hydration:** Aim for at least 8 glasses of water daily, herbal teas are also beneficial",
	},
	"meditation": {
		"**Breakfast:** Smoothie with spinach, banana, and plant-based protein",
		"**Lunch:** Buddha bowl with chickpeas, vegetables, and tahini dressing",
		"**Dinner:** Vegetable soup with whole grain bread",
		"**Snacks:** Mixed berries, dark chocolate (70% or higher)",
		"**Hydration:** Aim for at least 8 glasses of water daily, calming herbal teas",
	},
}

var exerciseRecommendations = map[string][]string{
	"weight-loss": {
		"30-45 minutes of cardio (running, cycling, or swimming) 4-5 times a week",
		"High-intensity interval training (HIIT) 2-3 times a week",
		"Full-body strength training 2-3 times a week",
		"Regular stretching or yoga for recovery",
		"Try to get 7,000-10,000 steps daily",
	},
	"weight-gain": {
		"Progressive overload strength training 4-5 times a week",
		"Focus on compound movements: squats, deadlifts, bench press",
		"Limit cardio to 1-2 short sessions weekly",
		"Ensure proper rest between workouts (48 hours for each muscle group)",
		"Prioritize recovery with 7-9 hours of sleep",
	},
	"figure-management": {
		"Combination of strength training and moderate cardio",
		"Body-part split routines focusing on problem areas",
		"Incorporate resistance bands and bodyweight exercises",
		"Pilates or barre classes for muscle toning",
		"Consistent routine of 4-5 workouts per week",
	},
	"yoga": {
		"Daily yoga practice of at least 20-30 minutes",
		"Mix of vinyasa flow and restorative practices",
		"Light cardio like walking or swimming 2-3 times a week",
		"Balance poses to improve stability",
		"Deep stretching routines for flexibility",
	},
	"meditation": {
		"Daily meditation practice (start with 5-10 minutes and build up)",
		"Gentle yoga or tai chi for mind-body connection",
		"Walking meditation in nature",
		"Light to moderate exercise like swimming or walking",
		"Breathing exercises throughout the day",
	},
}

const progressTips = "Tracking your progress is crucial for staying motivated! Here are some tips:\n\n" +
	"1. Take weekly measurements and photos\n" +
	"2. Keep a workout journal\n" +
	"3. Use the streak feature in our app to maintain consistency\n" +
	"4. Set small, achievable goals along the way\n" +
	"5. Celebrate your victories, no matter how small\n\n" +
	"Remember that progress isn't always linear. Focus on consistency and the habits you're building rather than just the end result."

var genericResponses = []string{
	"I'm here to support your fitness journey! What specific help do you need with your workout or nutrition plan?",
	"Your dedication to fitness is inspiring! How can I help you optimize your routine today?",
	"Health is a journey, not a destination. What aspect of your wellness routine would you like to discuss?",
	"Let me know if you need help with exercise techniques, meal planning, or motivation strategies!",
	"Every step counts on your fitness journey. How can I help you take the next one?",
}
