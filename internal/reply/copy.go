package reply

// Static business copy per sector and intent. Nothing user-supplied is
// ever interpolated into these blocks.

const hospitalityWelcome = `Welcome to Hawana Cafe! ☕
We serve breakfast, lunch and dinner every day.
Reply with:
  1. "menu" to see today's menu
  2. "book" to reserve a table
  3. "delivery" for delivery times
Or just tell us what you need and our team will get back to you.`

const hospitalityMenu = `Hawana Cafe Menu 🍽️
— Breakfast (7:00–11:30): shakshuka, foul & falafel plate, granola bowl
— Lunch & Dinner: grilled sea bass, lamb kofta, wild mushroom risotto
— Drinks: single-origin coffee, fresh juices, signature iced karak
Reply "book" to reserve a table or visit us at Marina Walk, Unit 12.`

const hospitalityReservation = `Hawana Cafe Reservation 📅
We would love to host you! Please send:
  • Number of guests
  • Preferred date and time
  • Indoor or terrace seating
A host will confirm your table within 30 minutes during opening hours.`

const hospitalityHours = `Hawana Cafe Hours & Delivery 🛵
Open daily 7:00–23:00 (kitchen closes 22:30).
Delivery available 11:00–22:00 within 8 km — order through the usual
delivery apps or reply "order" here and we will take it from there.`

const educationWelcome = `Welcome to Hawana Academy! 🎓
We offer accredited programs for school students and adult learners.
Reply with:
  1. "courses" to browse our programs
  2. "enroll" to start an application
  3. "schedule" for term dates and timings
An admissions advisor is also available on this number 9:00–17:00.`

const educationCourses = `Hawana Academy Programs 📚
— STEM Foundations (ages 10–14)
— IGCSE & A-Level tutoring, all sciences and maths
— Professional certificates: data analysis, project management
Reply "enroll" and we will send the application form for any program.`

const educationEnrolment = `Hawana Academy Admissions 📝
To start an application please send:
  • Student full name
  • Program of interest
  • Previous school or qualification
Our admissions team will reply with the form and assessment dates.`

const educationSchedule = `Hawana Academy Term Schedule 🗓️
— Autumn term: 7 Sep – 18 Dec
— Spring term: 11 Jan – 2 Apr
— Summer intensives: July, two-week blocks
Weekday classes run 16:00–20:00, weekend classes 10:00–14:00.`

const investmentWelcome = `Welcome to Hawana Capital. 📈
We help clients build long-term, diversified portfolios.
Reply with:
  1. "plans" to see our investment products
  2. "invest" to open an account
  3. "contact" to book a call with an advisor
Capital at risk. This channel does not provide personal financial advice.`

const investmentPlans = `Hawana Capital Products 💼
— Steady Income: sukuk and investment-grade bond portfolio
— Balanced Growth: 60/40 global equity and fixed income
— Horizon Equity: long-horizon global equity portfolio
Reply "invest" to open an account or "contact" to speak to an advisor.`

const investmentOnboarding = `Opening a Hawana Capital account 🏦
Please send:
  • Full legal name
  • Country of residence
  • Approximate initial investment
An onboarding specialist will send the KYC checklist and next steps.`

const investmentContact = `Hawana Capital Client Desk ☎️
Advisors are available Sunday–Thursday, 9:00–18:00 (GST).
Reply with a preferred time window and an advisor will call you back,
or email clients@hawanacapital.example for anything non-urgent.`
