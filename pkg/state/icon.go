package state

// Icon is the symbol shown for a category.
type Icon string

const (
	IconPackage        Icon = "Package"
	IconHome           Icon = "Home"
	IconCar            Icon = "Car"
	IconUtensils       Icon = "Utensils"
	IconShoppingCart   Icon = "ShoppingCart"
	IconHeartPulse     Icon = "HeartPulse"
	IconTicket         Icon = "Ticket"
	IconGraduationCap  Icon = "GraduationCap"
	IconGift           Icon = "Gift"
	IconBriefcase      Icon = "Briefcase"
	IconDollarSign     Icon = "DollarSign"
	IconPiggyBank      Icon = "PiggyBank"
	IconCoffee         Icon = "Coffee"
	IconGamepad2       Icon = "Gamepad2"
	IconMusic          Icon = "Music"
	IconSmartphone     Icon = "Smartphone"
	IconLaptop         Icon = "Laptop"
	IconShirt          Icon = "Shirt"
	IconPlane          Icon = "Plane"
	IconFuel           Icon = "Fuel"
	IconZap            Icon = "Zap"
	IconWifi           Icon = "Wifi"
	IconPhone          Icon = "Phone"
	IconCreditCard     Icon = "CreditCard"
	IconBuilding       Icon = "Building"
	IconMoreHorizontal Icon = "MoreHorizontal"
)

var icons = map[string]Icon{}

// Categories stored before icons were saved by name use their value instead
var legacyIcons = map[string]Icon{
	"housing":        IconHome,
	"transportation": IconCar,
	"food":           IconUtensils,
	"groceries":      IconShoppingCart,
	"health":         IconHeartPulse,
	"entertainment":  IconTicket,
	"education":      IconGraduationCap,
	"personal":       IconGift,
	"other":          IconMoreHorizontal,
	"salary":         IconBriefcase,
	"freelance":      IconDollarSign,
	"investment":     IconPiggyBank,
	"other-income":   IconMoreHorizontal,
}

func init() {
	for _, i := range []Icon{
		IconPackage, IconHome, IconCar, IconUtensils, IconShoppingCart, IconHeartPulse,
		IconTicket, IconGraduationCap, IconGift, IconBriefcase, IconDollarSign, IconPiggyBank,
		IconCoffee, IconGamepad2, IconMusic, IconSmartphone, IconLaptop, IconShirt, IconPlane,
		IconFuel, IconZap, IconWifi, IconPhone, IconCreditCard, IconBuilding, IconMoreHorizontal,
	} {
		icons[string(i)] = i
	}
}

// ResolveIcon returns the icon for a stored icon name. Unknown names
// resolve to IconPackage.
func ResolveIcon(name string) Icon {
	if i, ok := icons[name]; ok {
		return i
	}

	if i, ok := legacyIcons[name]; ok {
		return i
	}

	return IconPackage
}
