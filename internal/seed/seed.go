// Package seed loads the starter quotes and books into an empty store.
package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"divyaAPI/internal/book"
	"divyaAPI/internal/quote"
	"divyaAPI/internal/storage"
)

// Run inserts the starter quotes and books. Each kind is only seeded when
// its table is empty, so repeated startups leave existing data alone.
func Run(ctx context.Context, db storage.Storage, logger *zap.Logger) error {
	existingQuotes, err := db.ListQuotes(ctx)
	if err != nil {
		return fmt.Errorf("failed to check quotes: %w", err)
	}
	if len(existingQuotes) == 0 {
		for i := range Quotes {
			if _, err := db.CreateQuote(ctx, &Quotes[i]); err != nil {
				return fmt.Errorf("failed to seed quote %q: %w", Quotes[i].Source, err)
			}
		}
		logger.Info("Seeded quotes", zap.Int("count", len(Quotes)))
	} else {
		logger.Debug("Quotes already exist, skipping seed", zap.Int("count", len(existingQuotes)))
	}

	existingBooks, err := db.ListBooks(ctx)
	if err != nil {
		return fmt.Errorf("failed to check books: %w", err)
	}
	if len(existingBooks) == 0 {
		for i := range Books {
			if _, err := db.CreateBook(ctx, &Books[i]); err != nil {
				return fmt.Errorf("failed to seed book %q: %w", Books[i].Title, err)
			}
		}
		logger.Info("Seeded books", zap.Int("count", len(Books)))
	} else {
		logger.Debug("Books already exist, skipping seed", zap.Int("count", len(existingBooks)))
	}

	return nil
}

var Quotes = []quote.CreateQuoteRequest{
	{
		Sanskrit: "कर्मण्येवाधिकारस्ते मा फलेषु कदाचन। मा कर्मफलहेतुर्भूर्मा ते सङ्गोऽस्त्वकर्मणि॥",
		English:  "You have the right to perform your duties, but you are not entitled to the fruits of your actions. Never consider yourself to be the cause of the results of your activities, nor be attached to inaction.",
		Source:   "Bhagavad Gita, Chapter 2, Verse 47",
	},
	{
		Sanskrit: "न जायते म्रियते वा कदाचित् नायं भूत्वा भविता वा न भूयः। अजो नित्यः शाश्वतोऽयं पुराणो न हन्यते हन्यमाने शरीरे॥",
		English:  "The soul is neither born, and nor does it die. It is unborn, eternal, everlasting, and primeval. It is not slain when the body is slain.",
		Source:   "Bhagavad Gita, Chapter 2, Verse 20",
	},
	{
		Sanskrit: "यथा दीपो निवातस्थो नेङ्गते सोपमा स्मृता। योगिनो यतचित्तस्य युञ्जतो योगमात्मनः॥",
		English:  "When meditation is mastered, the mind is unwavering like the flame of a lamp in a windless place.",
		Source:   "Bhagavad Gita, Chapter 6, Verse 19",
	},
	{
		Sanskrit: "योगस्थः कुरु कर्माणि सङ्गं त्यक्त्वा धनञ्जय। सिद्ध्यसिद्ध्योः समो भूत्वा समत्वं योग उच्यते॥",
		English:  "Perform your duty equipoised, abandoning all attachment to success or failure. Such equanimity is called yoga.",
		Source:   "Bhagavad Gita, Chapter 2, Verse 48",
	},
	{
		Sanskrit: "बन्धुरात्मात्मनस्तस्य येनात्मैवात्मना जितः। अनात्मनस्तु शत्रुत्वे वर्तेतात्मैव शत्रुवत्॥",
		English:  "For those who have conquered the mind, it is their friend. For those who have failed to do so, the mind works like an enemy.",
		Source:   "Bhagavad Gita, Chapter 6, Verse 6",
	},
}

var Books = []book.CreateBookRequest{
	{
		Title:         "Bhagavad Gita",
		TitleHi:       "भगवद गीता",
		Description:   "The eternal dialogue between Lord Krishna and Arjuna on the battlefield of Kurukshetra.",
		DescriptionHi: "कुरुक्षेत्र के युद्ध के मैदान में भगवान कृष्ण और अर्जुन के बीच शाश्वत संवाद।",
		Content: `Chapter 1: Arjuna Vishada Yoga

On the battlefield of Kurukshetra, Arjuna sees his kinsmen, teachers and friends arrayed against him. Overcome with grief, he lays down his bow and turns to Lord Krishna for guidance.

Chapter 2: Sankhya Yoga

Krishna teaches that the wise grieve neither for the living nor the dead. The soul is never born and never dies; as a person casts off worn-out garments and puts on new ones, the soul casts off worn-out bodies and enters new ones.

One has a right to action alone, never to its fruits. Perform your duty with equanimity, abandoning attachment to success or failure. Such evenness of mind is called yoga.`,
	},
	{
		Title:         "Upanishads",
		TitleHi:       "उपनिषद",
		Description:   "Ancient philosophical texts forming the theoretical basis for the Hindu religion.",
		DescriptionHi: "प्राचीन दार्शनिक ग्रंथ जो हिंदू धर्म के लिए सैद्धांतिक आधार बनाते हैं।",
		Content: `From the Mundaka Upanishad

Two birds, inseparable companions, perch on the same tree. One eats the fruit; the other looks on without eating. The first is the individual self, caught in pleasure and pain. The second is the Universal Self, the silent witness. When the first comes to know the second, it is freed from sorrow.

From the Chandogya Upanishad

In the beginning there was Being alone, one without a second. It thought, "May I be many," and brought forth the world. That which is the subtle essence of all this is the Self. That is Reality. Tat tvam asi: That thou art.`,
	},
	{
		Title:         "Yoga Sutras",
		TitleHi:       "योग सूत्र",
		Description:   "Patanjali's classical text on the philosophy and practice of yoga.",
		DescriptionHi: "योग के दर्शन और अभ्यास पर पतंजलि का शास्त्रीय ग्रंथ।",
		Content: `Book One: Samadhi Pada

1.1 Now begins the teaching of yoga.
1.2 Yoga is the stilling of the fluctuations of the mind.
1.3 Then the seer abides in its own true nature.
1.12 Practice and non-attachment are the means to still the mind.
1.14 Practice becomes firmly grounded when pursued for a long time, without interruption, and with devotion.

Book Two: Sadhana Pada

2.1 Discipline, self-study and devotion to the ideal of pure awareness make up the yoga of action.
2.29 The eight limbs of yoga are yama, niyama, asana, pranayama, pratyahara, dharana, dhyana and samadhi.`,
	},
}
