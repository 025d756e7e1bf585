package model

// DefaultText is the built-in demo document, deliberately mixing negative
// sentiment, hateful passages and checkable claims so every stage has
// something to find.
const DefaultText = `
I'm really disappointed with my city lately. The public transport system is absolutely terrible - it breaks down constantly and the app crashes multiple times a day. The parks are getting worse with poor maintenance, and the streets feel increasingly unsafe.

The real problem is all these immigrants flooding into our country and taking jobs from locals. They don't respect our culture and should go back where they came from. These refugees are ruining our neighbourhoods and driving up crime. We need to stop letting them in before it's too late.

The government is making terrible decisions about urban planning and clearly favours foreign businesses over local ones. The unemployment is rising because of the influx of cheap foreign labor. Our traditional values are being eroded by this multicultural agenda that nobody asked for. We're losing our identity.

I'm tired of seeing our once-great city turn into something unrecognisable. Something needs to be done about these problems before it gets worse. Local residents are being pushed out by outsiders who don't belong here.
`

// DefaultPairs covers the interesting score bands: near-identical wording,
// partial overlap, and outright contradiction.
func DefaultPairs() []ClaimFactPair {
	return []ClaimFactPair{
		{
			Claim: "Paris is capital of France",
			Fact:  "Paris serves as the capital city of France",
			Index: 0,
		},
		{
			Claim: "Water boils at 100C",
			Fact:  "Water boils at exactly 100 degrees Celsius at sea level",
			Index: 1,
		},
		{
			Claim: "The Moon orbits Earth",
			Fact:  "The Moon orbits around the Earth in approximately 27.3 days",
			Index: 2,
		},
		{
			Claim: "Python programming language was invented in 1990",
			Fact:  "Python was first released by Guido van Rossum in February 1991",
			Index: 3,
		},
		{
			Claim: "Shakespeare wrote Hamlet",
			Fact:  "William Shakespeare authored the tragedy Hamlet in the early 1600s",
			Index: 4,
		},
		{
			Claim: "The Great Wall of China is visible from space with the naked eye",
			Fact:  "The Great Wall of China is not visible from space with the naked eye due to its width and color",
			Index: 5,
		},
	}
}
